package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/report"
)

// ReportHandler descarga de reportes PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PersonCustody godoc
// @Summary      Hoja de custodia de una persona (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la persona"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/people/{id}/report.pdf [get]
func (h *ReportHandler) PersonCustody(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.PersonCustody(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// Inventory godoc
// @Summary      Reporte de inventario (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Param        orgId  path  string  true  "ID de la organización"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/{orgId}/inventory/report.pdf [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.InventoryReport(c.UserContext(), c.Params("orgId"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
