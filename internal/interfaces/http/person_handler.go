package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
)

// PersonHandler maneja las peticiones HTTP de personas.
type PersonHandler struct {
	uc *usecase.PersonUseCase
}

// NewPersonHandler construye el handler.
func NewPersonHandler(uc *usecase.PersonUseCase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

// List godoc
// @Summary      Listar personas de la organización
// @Tags         people
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {array}   dto.PersonResponse
// @Router       /api/organizations/{orgId}/people [get]
func (h *PersonHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear persona
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        orgId  path  string                   true  "ID de la organización"
// @Param        body   body  dto.CreatePersonRequest  true  "Datos de la persona"
// @Success      201  {object}  dto.PersonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId}/people [post]
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonRequest
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
// @Summary      Obtener persona con sus activos y licencias
// @Tags         people
// @Produce      json
// @Param        id  path  string  true  "ID de la persona"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/people/{id} [get]
func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "persona no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar persona
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la persona"
// @Param        body  body  dto.UpdatePersonRequest  true  "Campos a modificar; teamId/managerId vacíos los quitan"
// @Success      200  {object}  dto.PersonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/people/{id} [put]
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "persona no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar persona
// @Description  Libera sus activos, quita sus cupos y códigos de licencia y limpia las referencias
//
//	de gerente y subordinados.
//
// @Tags         people
// @Produce      json
// @Param        id  path  string  true  "ID de la persona"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/people/{id} [delete]
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "persona eliminada"})
}
