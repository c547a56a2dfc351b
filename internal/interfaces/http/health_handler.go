package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
)

// HealthHandler responde el chequeo de salud con la dirección de escucha configurada.
type HealthHandler struct {
	host string
	port int
	now  func() time.Time
}

// NewHealthHandler construye el handler.
func NewHealthHandler(host string, port int) *HealthHandler {
	return &HealthHandler{host: host, port: port, now: time.Now}
}

// Check godoc
// @Summary      Chequeo de salud
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
		Port:      h.port,
		Host:      h.host,
		Database:  "SQLite",
	})
}
