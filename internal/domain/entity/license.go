package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// License licencia de software con cupos asignables a personas.
// La cantidad usada y el estado de vencimiento son derivados: no se persisten.
// Invariante: len(AssignedTo) <= TotalQuantity.
type License struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	ExpirationDate  string              `json:"expiration_date"` // YYYY-MM-DD
	TotalQuantity   int                 `json:"total_quantity"`
	Cost            decimal.NullDecimal `json:"cost"`
	Vendor          string              `json:"vendor"`
	OrganizationID  string              `json:"organization_id"`
	AssignedTo      IDList              `json:"assigned_to"`
	LicenseCode     string              `json:"license_code"`
	IndividualCodes CodeMap             `json:"individual_codes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// UsedQuantity cupos ocupados (derivado de AssignedTo).
func (l License) UsedQuantity() int {
	return len(l.AssignedTo)
}
