package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para crear un ítem de inventario.
type CreateInventoryItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinQuantity int             `json:"minQuantity" validate:"min=0"`
	Location    string          `json:"location"`
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
	Supplier    string          `json:"supplier"`
}

// UpdateInventoryItemRequest entrada para actualizar un ítem de inventario.
type UpdateInventoryItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	MinQuantity *int             `json:"minQuantity" validate:"omitempty,min=0"`
	Location    *string          `json:"location"`
	CostPerUnit *decimal.Decimal `json:"costPerUnit"`
	Supplier    *string          `json:"supplier"`
}

// UpdateQuantityRequest cuerpo de PUT /inventory/:id/quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// InventoryItemResponse salida de un ítem con estado y valor total derivados.
type InventoryItemResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Quantity       int             `json:"quantity"`
	MinQuantity    int             `json:"minQuantity"`
	Location       string          `json:"location"`
	OrganizationID string          `json:"organizationId"`
	CostPerUnit    decimal.Decimal `json:"costPerUnit"`
	Supplier       string          `json:"supplier"`
	Status         string          `json:"status"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
