package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/snapshot"
)

// SnapshotHandler exportación, importación y restauración del conjunto completo de datos.
type SnapshotHandler struct {
	manager *snapshot.Manager
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(manager *snapshot.Manager) *SnapshotHandler {
	return &SnapshotHandler{manager: manager}
}

// BackupStatus respuesta de GET /api/snapshot/backup.
type BackupStatus struct {
	Exists bool `json:"exists"`
}

// Export godoc
// @Summary      Exportar todas las colecciones
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  entity.Snapshot
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/snapshot/export [get]
func (h *SnapshotHandler) Export(c *fiber.Ctx) error {
	snap, err := h.manager.Export(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	if c.QueryBool("download") {
		c.Attachment("asset-tracker-backup.json")
	}
	return c.JSON(snap)
}

// Import godoc
// @Summary      Importar un snapshot
// @Description  Valida las seis colecciones; si el documento es válido guarda un backup del estado
//
//	actual y reemplaza todo. Un documento inválido no modifica nada.
//
// @Tags         snapshot
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Snapshot  true  "Snapshot exportado"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/snapshot/import [post]
func (h *SnapshotHandler) Import(c *fiber.Ctx) error {
	if err := h.manager.Import(c.UserContext(), c.Body()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "datos importados"})
}

// Restore godoc
// @Summary      Restaurar el último backup
// @Description  El estado actual pasa a ser el nuevo backup.
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/snapshot/restore [post]
func (h *SnapshotHandler) Restore(c *fiber.Ctx) error {
	if err := h.manager.RestoreBackup(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "backup restaurado"})
}

// Clear godoc
// @Summary      Borrar todos los datos
// @Description  Guarda un backup antes de vaciar las seis colecciones.
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/snapshot/clear [post]
func (h *SnapshotHandler) Clear(c *fiber.Ctx) error {
	if err := h.manager.ClearAllData(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "datos eliminados"})
}

// Backup godoc
// @Summary      Indica si existe un backup
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  BackupStatus
// @Router       /api/snapshot/backup [get]
func (h *SnapshotHandler) Backup(c *fiber.Ctx) error {
	ok, err := h.manager.HasBackup(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(BackupStatus{Exists: ok})
}
