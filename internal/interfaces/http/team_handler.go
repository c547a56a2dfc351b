package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
)

// TeamHandler maneja las peticiones HTTP de equipos y su membresía.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// List godoc
// @Summary      Listar equipos de la organización
// @Tags         teams
// @Produce      json
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {array}   dto.TeamResponse
// @Router       /api/organizations/{orgId}/teams [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear equipo
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        orgId  path  string                 true  "ID de la organización"
// @Param        body   body  dto.CreateTeamRequest  true  "Datos del equipo"
// @Success      201  {object}  dto.TeamResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId}/teams [post]
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTeamRequest
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
// @Summary      Obtener equipo por ID
// @Tags         teams
// @Produce      json
// @Param        id  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.TeamResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{id} [get]
func (h *TeamHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "equipo no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar equipo
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del equipo"
// @Param        body  body  dto.UpdateTeamRequest  true  "Campos a modificar; managerId vacío lo quita"
// @Success      200  {object}  dto.TeamResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{id} [put]
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTeamRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "equipo no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar equipo
// @Description  Las personas del equipo quedan sin equipo.
// @Tags         teams
// @Produce      json
// @Param        id  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/teams/{id} [delete]
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "equipo eliminado"})
}

// Members godoc
// @Summary      Miembros activos del equipo
// @Tags         teams
// @Produce      json
// @Param        id  path  string  true  "ID del equipo"
// @Success      200  {array}   dto.PersonResponse
// @Router       /api/teams/{id}/members [get]
func (h *TeamHandler) Members(c *fiber.Ctx) error {
	out, err := h.uc.Members(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddMember godoc
// @Summary      Agregar persona al equipo
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del equipo"
// @Param        body  body  dto.TeamMemberRequest  true  "personId"
// @Success      200  {object}  dto.TeamResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *fiber.Ctx) error {
	var in dto.TeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddPerson(c.UserContext(), c.Params("id"), in.PersonID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "equipo no encontrado")
	}
	return c.JSON(out)
}

// RemoveMember godoc
// @Summary      Quitar persona del equipo
// @Tags         teams
// @Produce      json
// @Param        id        path  string  true  "ID del equipo"
// @Param        personId  path  string  true  "ID de la persona"
// @Success      200  {object}  dto.TeamResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{id}/members/{personId} [delete]
func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	out, err := h.uc.RemovePerson(c.UserContext(), c.Params("id"), c.Params("personId"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "equipo no encontrado")
	}
	return c.JSON(out)
}
