package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP de ítems de inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario de la organización
// @Tags         inventory
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {array}   dto.InventoryItemResponse
// @Router       /api/organizations/{orgId}/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Ítems con stock bajo
// @Description  Solo estado low_stock; los agotados se consultan en needs-restock.
// @Tags         inventory
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {array}   dto.InventoryItemResponse
// @Router       /api/organizations/{orgId}/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// NeedsRestock godoc
// @Summary      Ítems que requieren reposición
// @Description  Incluye los ítems con stock bajo y los agotados.
// @Tags         inventory
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {array}   dto.InventoryItemResponse
// @Router       /api/organizations/{orgId}/inventory/needs-restock [get]
func (h *InventoryHandler) NeedsRestock(c *fiber.Ctx) error {
	out, err := h.uc.GetNeedsRestock(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        orgId  path  string                          true  "ID de la organización"
// @Param        body   body  dto.CreateInventoryItemRequest  true  "Datos del ítem"
// @Success      201  {object}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId}/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
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
// @Summary      Obtener ítem por ID
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "ítem no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del ítem"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "ítem no encontrado")
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Actualizar la cantidad
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del ítem"
// @Param        body  body  dto.UpdateQuantityRequest  true  "quantity"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/quantity [put]
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), c.Params("id"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "ítem no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "ítem eliminado"})
}
