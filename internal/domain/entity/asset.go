package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de activo.
const (
	AssetNotebook = "notebook"
	AssetMonitor  = "monitor"
	AssetAdapter  = "adapter"
	AssetOther    = "other"
)

// Estados de activo. Invariante: allocated ⇔ AssignedTo != nil.
const (
	AssetAvailable   = "available"
	AssetAllocated   = "allocated"
	AssetMaintenance = "maintenance"
)

// Condiciones físicas de activo.
const (
	ConditionNew  = "new"
	ConditionGood = "good"
	ConditionFair = "fair"
	ConditionPoor = "poor"
)

// Asset activo físico (notebook, monitor, adaptador...).
type Asset struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	SerialNumber   string          `json:"serial_number"`
	Status         string          `json:"status"`
	Condition      string          `json:"condition"`
	Value          decimal.Decimal `json:"value"`
	PurchaseDate   string          `json:"purchase_date"` // YYYY-MM-DD
	AssignedTo     *string         `json:"assigned_to"`
	OrganizationID string          `json:"organization_id"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ValidAssetType indica si t es un tipo conocido.
func ValidAssetType(t string) bool {
	switch t {
	case AssetNotebook, AssetMonitor, AssetAdapter, AssetOther:
		return true
	}
	return false
}

// ValidAssetStatus indica si s es un estado conocido.
func ValidAssetStatus(s string) bool {
	switch s {
	case AssetAvailable, AssetAllocated, AssetMaintenance:
		return true
	}
	return false
}

// ValidCondition indica si c es una condición conocida.
func ValidCondition(c string) bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}
