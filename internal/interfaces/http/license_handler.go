package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
)

// LicenseHandler maneja las peticiones HTTP de licencias, cupos y códigos.
type LicenseHandler struct {
	uc *usecase.LicenseUseCase
}

// NewLicenseHandler construye el handler.
func NewLicenseHandler(uc *usecase.LicenseUseCase) *LicenseHandler {
	return &LicenseHandler{uc: uc}
}

// List godoc
// @Summary      Listar licencias de la organización
// @Tags         licenses
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {array}   dto.LicenseResponse
// @Router       /api/organizations/{orgId}/licenses [get]
func (h *LicenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear licencia
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        orgId  path  string                    true  "ID de la organización"
// @Param        body   body  dto.CreateLicenseRequest  true  "Datos de la licencia"
// @Success      201  {object}  dto.LicenseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId}/licenses [post]
func (h *LicenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), c.Params("orgId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener licencia por ID
// @Tags         licenses
// @Produce      json
// @Param        id  path  string  true  "ID de la licencia"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [get]
func (h *LicenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "licencia no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar licencia
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la licencia"
// @Param        body  body  dto.UpdateLicenseRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [put]
func (h *LicenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "licencia no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar licencia
// @Tags         licenses
// @Produce      json
// @Param        id  path  string  true  "ID de la licencia"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/licenses/{id} [delete]
func (h *LicenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "licencia eliminada"})
}

// Assign godoc
// @Summary      Asignar un cupo de la licencia
// @Description  Sin cupos libres responde 200 con assigned=false y no modifica la licencia.
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la licencia"
// @Param        body  body  dto.AssignLicenseRequest  true  "personId"
// @Success      200  {object}  dto.LicenseAssignResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id}/assign [post]
func (h *LicenseHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AssignToUser(c.UserContext(), c.Params("id"), in.PersonID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "licencia no encontrada")
	}
	return c.JSON(out)
}

// Unassign godoc
// @Summary      Liberar el cupo de una persona
// @Tags         licenses
// @Produce      json
// @Param        id        path  string  true  "ID de la licencia"
// @Param        personId  path  string  true  "ID de la persona"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id}/assign/{personId} [delete]
func (h *LicenseHandler) Unassign(c *fiber.Ctx) error {
	out, err := h.uc.UnassignFromUser(c.UserContext(), c.Params("id"), c.Params("personId"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "licencia no encontrada")
	}
	return c.JSON(out)
}

// UpdateCode godoc
// @Summary      Actualizar el código general
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la licencia"
// @Param        body  body  dto.LicenseCodeRequest  true  "code"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id}/code [put]
func (h *LicenseHandler) UpdateCode(c *fiber.Ctx) error {
	var in dto.LicenseCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateLicenseCode(c.UserContext(), c.Params("id"), in.Code)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "licencia no encontrada")
	}
	return c.JSON(out)
}

// UpdateIndividualCode godoc
// @Summary      Actualizar el código individual de una persona
// @Description  Un código vacío elimina la entrada. La persona debe tener un cupo asignado.
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        id        path  string                  true  "ID de la licencia"
// @Param        personId  path  string                  true  "ID de la persona"
// @Param        body      body  dto.LicenseCodeRequest  true  "code"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id}/codes/{personId} [put]
func (h *LicenseHandler) UpdateIndividualCode(c *fiber.Ctx) error {
	var in dto.LicenseCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateIndividualCode(c.UserContext(), c.Params("id"), c.Params("personId"), in.Code)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "licencia no encontrada")
	}
	return c.JSON(out)
}
