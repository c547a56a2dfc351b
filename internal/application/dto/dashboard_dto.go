package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse respuesta de GET /api/organizations/:orgId/dashboard.
// Todos los valores se recalculan en cada lectura.
type DashboardSummaryResponse struct {
	OrganizationID string `json:"organizationId"`

	People PeopleSummary `json:"people"`
	Teams  int           `json:"teams"`

	Assets    AssetSummary     `json:"assets"`
	Licenses  LicenseSummary   `json:"licenses"`
	Inventory InventorySummary `json:"inventory"`
}

// PeopleSummary conteos de personas.
type PeopleSummary struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	WithTeam    int `json:"withTeam"`
	WithoutTeam int `json:"withoutTeam"`
}

// AssetSummary conteos de activos por estado y valor total.
type AssetSummary struct {
	Total       int             `json:"total"`
	Available   int             `json:"available"`
	Allocated   int             `json:"allocated"`
	Maintenance int             `json:"maintenance"`
	TotalValue  decimal.Decimal `json:"totalValue"`
}

// LicenseSummary conteos de licencias por estado y cupos.
type LicenseSummary struct {
	Total        int             `json:"total"`
	Active       int             `json:"active"`
	ExpiringSoon int             `json:"expiringSoon"`
	Expired      int             `json:"expired"`
	TotalSeats   int             `json:"totalSeats"`
	UsedSeats    int             `json:"usedSeats"`
	TotalCost    decimal.Decimal `json:"totalCost"`
}

// InventorySummary conteos de ítems por estado de stock y valor total.
type InventorySummary struct {
	Total      int             `json:"total"`
	LowStock   int             `json:"lowStock"`
	OutOfStock int             `json:"outOfStock"`
	TotalValue decimal.Decimal `json:"totalValue"`
}
