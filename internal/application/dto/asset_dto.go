package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest entrada para crear un activo.
type CreateAssetRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Type         string          `json:"type" validate:"required,oneof=notebook monitor adapter other"`
	SerialNumber string          `json:"serialNumber"`
	Status       string          `json:"status" validate:"omitempty,oneof=available allocated maintenance"`
	Condition    string          `json:"condition" validate:"omitempty,oneof=new good fair poor"`
	Value        decimal.Decimal `json:"value"`
	PurchaseDate string          `json:"purchaseDate"`
	AssignedTo   *string         `json:"assignedTo"`
	Notes        string          `json:"notes"`
}

// UpdateAssetRequest entrada para actualizar un activo. AssignedTo "" lo libera.
type UpdateAssetRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Type         *string          `json:"type" validate:"omitempty,oneof=notebook monitor adapter other"`
	SerialNumber *string          `json:"serialNumber"`
	Status       *string          `json:"status" validate:"omitempty,oneof=available allocated maintenance"`
	Condition    *string          `json:"condition" validate:"omitempty,oneof=new good fair poor"`
	Value        *decimal.Decimal `json:"value"`
	PurchaseDate *string          `json:"purchaseDate"`
	AssignedTo   *string          `json:"assignedTo"`
	Notes        *string          `json:"notes"`
}

// AssignAssetRequest cuerpo de POST /assets/:id/assign.
type AssignAssetRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

// AssetResponse salida de un activo con el nombre del responsable.
type AssetResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	SerialNumber   string          `json:"serialNumber"`
	Status         string          `json:"status"`
	Condition      string          `json:"condition"`
	Value          decimal.Decimal `json:"value"`
	PurchaseDate   string          `json:"purchaseDate"`
	AssignedTo     *string         `json:"assignedTo"`
	AssignedToName string          `json:"assignedToName,omitempty"`
	OrganizationID string          `json:"organizationId"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
