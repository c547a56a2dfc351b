package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
)

// OrganizationHandler maneja las peticiones HTTP de organizaciones.
type OrganizationHandler struct {
	uc        *usecase.OrganizationUseCase
	dashboard *usecase.DashboardUseCase
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase, dashboard *usecase.DashboardUseCase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc, dashboard: dashboard}
}

// List godoc
// @Summary      Listar organizaciones
// @Tags         organizations
// @Produce      json
// @Success      200  {array}   dto.OrganizationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/organizations [get]
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear organización
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizationRequest  true  "Datos de la organización"
// @Success      201   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/organizations [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener organización por ID
// @Tags         organizations
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId} [get]
func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "organización no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar organización
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        orgId  path  string                          true  "ID de la organización"
// @Param        body   body  dto.UpdateOrganizationRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId} [put]
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("orgId"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "organización no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar organización
// @Description  Elimina también sus equipos, personas, activos, licencias e inventario.
// @Tags         organizations
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/organizations/{orgId} [delete]
func (h *OrganizationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("orgId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "organización eliminada"})
}

// Dashboard godoc
// @Summary      Resumen de la organización
// @Tags         organizations
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId}/dashboard [get]
func (h *OrganizationHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.Summary(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
