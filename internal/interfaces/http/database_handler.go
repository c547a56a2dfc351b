package http

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

// DatabaseHandler expone las colecciones crudas (forma almacenada) que usa el cliente web.
// Los cuerpos de error conservan el formato {"error": "..."} que ese cliente espera.
type DatabaseHandler struct {
	store repository.Store
}

// NewDatabaseHandler construye el handler.
func NewDatabaseHandler(store repository.Store) *DatabaseHandler {
	return &DatabaseHandler{store: store}
}

// GetAll godoc
// @Summary      Leer todas las colecciones
// @Tags         database
// @Produce      json
// @Success      200  {object}  entity.Dataset
// @Failure      500  {object}  dto.LegacyErrorResponse
// @Router       /api/database [get]
func (h *DatabaseHandler) GetAll(c *fiber.Ctx) error {
	ds, err := h.store.Read(c.UserContext())
	if err != nil {
		c.Locals(localsErrorKey, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.LegacyErrorResponse{Error: "Failed to read database"})
	}
	return c.JSON(ds)
}

// GetCollection godoc
// @Summary      Leer una colección
// @Tags         database
// @Produce      json
// @Param        collection  path  string  true  "organizations, teams, people, assets, licenses o inventory"
// @Success      200  {array}   object
// @Failure      404  {object}  dto.LegacyErrorResponse
// @Failure      500  {object}  dto.LegacyErrorResponse
// @Router       /api/database/{collection} [get]
func (h *DatabaseHandler) GetCollection(c *fiber.Ctx) error {
	col, err := entity.ParseCollection(c.Params("collection"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.LegacyErrorResponse{Error: err.Error()})
	}
	ds, err := h.store.Read(c.UserContext(), col)
	if err != nil {
		c.Locals(localsErrorKey, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.LegacyErrorResponse{Error: fmt.Sprintf("Failed to read %s", col)})
	}
	rows, err := ds.Rows(col)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.LegacyErrorResponse{Error: err.Error()})
	}
	return c.JSON(rows)
}

// SaveCollection godoc
// @Summary      Reemplazar una colección completa
// @Description  Las filas pueden venir en forma almacenada (snake_case) o de vista (camelCase);
//
//	los campos derivados se descartan. Los ids ausentes se eliminan.
//
// @Tags         database
// @Accept       json
// @Produce      json
// @Param        collection  path  string    true  "Nombre de la colección"
// @Param        body        body  []object  true  "Registros"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.LegacyErrorResponse
// @Failure      404  {object}  dto.LegacyErrorResponse
// @Failure      500  {object}  dto.LegacyErrorResponse
// @Router       /api/database/{collection} [post]
func (h *DatabaseHandler) SaveCollection(c *fiber.Ctx) error {
	col, err := entity.ParseCollection(c.Params("collection"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.LegacyErrorResponse{Error: err.Error()})
	}
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || body[0] != '[' {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LegacyErrorResponse{Error: "Data must be an array"})
	}

	rows, err := view.ToStoredRecords(col, body)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LegacyErrorResponse{Error: err.Error()})
	}
	ds := entity.NewDataset()
	if err := ds.Decode(col, rows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LegacyErrorResponse{Error: err.Error()})
	}
	ds.StampMissingTimes(time.Now().UTC())

	if err := h.store.Replace(c.UserContext(), ds, col); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.LegacyErrorResponse{Error: err.Error()})
		}
		c.Locals(localsErrorKey, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.LegacyErrorResponse{Error: fmt.Sprintf("Failed to save %s", col)})
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: fmt.Sprintf("%s updated successfully", col)})
}
