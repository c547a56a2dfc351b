package report

import (
	"context"
	"time"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
)

// Generator renderiza los reportes a PDF. Lo implementa infrastructure/pdf.
type Generator interface {
	// CustodySheet hoja de custodia: activos y licencias a cargo de una persona.
	CustodySheet(ctx context.Context, org *dto.OrganizationResponse, person *dto.PersonResponse, generatedAt time.Time) ([]byte, error)
	// InventoryReport listado de inventario de la organización con estado y valor total.
	InventoryReport(ctx context.Context, org *dto.OrganizationResponse, items []dto.InventoryItemResponse, generatedAt time.Time) ([]byte, error)
}
