package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem ítem de stock consumible (periféricos, cables...). El estado de stock se deriva.
type InventoryItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Quantity       int             `json:"quantity"`
	MinQuantity    int             `json:"min_quantity"`
	Location       string          `json:"location"`
	OrganizationID string          `json:"organization_id"`
	CostPerUnit    decimal.Decimal `json:"cost_per_unit"`
	Supplier       string          `json:"supplier"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
