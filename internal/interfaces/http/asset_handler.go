package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
)

// AssetHandler maneja las peticiones HTTP de activos.
type AssetHandler struct {
	uc *usecase.AssetUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// List godoc
// @Summary      Listar activos de la organización
// @Tags         assets
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {array}   dto.AssetResponse
// @Router       /api/organizations/{orgId}/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Available godoc
// @Summary      Activos disponibles (sin responsable)
// @Tags         assets
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {array}   dto.AssetResponse
// @Router       /api/organizations/{orgId}/assets/available [get]
func (h *AssetHandler) Available(c *fiber.Ctx) error {
	out, err := h.uc.GetAvailable(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear activo
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        orgId  path  string                  true  "ID de la organización"
// @Param        body   body  dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201  {object}  dto.AssetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId}/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
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
// @Summary      Obtener activo por ID
// @Tags         assets
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "activo no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar activo
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del activo"
// @Param        body  body  dto.UpdateAssetRequest  true  "Campos a modificar; assignedTo vacío lo libera"
// @Success      200  {object}  dto.AssetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "activo no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar activo
// @Tags         assets
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "activo eliminado"})
}

// Assign godoc
// @Summary      Asignar activo a una persona
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del activo"
// @Param        body  body  dto.AssignAssetRequest  true  "personId"
// @Success      200  {object}  dto.AssetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/assign [post]
func (h *AssetHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AssignToUser(c.UserContext(), c.Params("id"), in.PersonID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "activo no encontrado")
	}
	return c.JSON(out)
}

// Unassign godoc
// @Summary      Liberar activo
// @Tags         assets
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/unassign [post]
func (h *AssetHandler) Unassign(c *fiber.Ctx) error {
	out, err := h.uc.UnassignFromUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "activo no encontrado")
	}
	return c.JSON(out)
}
