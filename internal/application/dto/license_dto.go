package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLicenseRequest entrada para crear una licencia.
type CreateLicenseRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	Description    string           `json:"description"`
	ExpirationDate string           `json:"expirationDate" validate:"required"`
	TotalQuantity  int              `json:"totalQuantity" validate:"min=0"`
	Cost           *decimal.Decimal `json:"cost"`
	Vendor         string           `json:"vendor"`
	LicenseCode    string           `json:"licenseCode"`
}

// UpdateLicenseRequest entrada para actualizar una licencia.
// Las asignaciones y los códigos individuales se cambian con sus endpoints propios.
type UpdateLicenseRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description"`
	ExpirationDate *string          `json:"expirationDate"`
	TotalQuantity  *int             `json:"totalQuantity" validate:"omitempty,min=0"`
	Cost           *decimal.Decimal `json:"cost"`
	Vendor         *string          `json:"vendor"`
	LicenseCode    *string          `json:"licenseCode"`
}

// AssignLicenseRequest cuerpo de POST /licenses/:id/assign.
type AssignLicenseRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

// LicenseCodeRequest cuerpo para actualizar el código general o uno individual.
type LicenseCodeRequest struct {
	Code string `json:"code"`
}

// LicenseAssignResponse resultado de asignar un cupo. Assigned=false si no había cupo.
type LicenseAssignResponse struct {
	Assigned bool            `json:"assigned"`
	License  LicenseResponse `json:"license"`
}

// LicenseResponse salida de una licencia con estado y cupos derivados.
type LicenseResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	ExpirationDate    string            `json:"expirationDate"`
	TotalQuantity     int               `json:"totalQuantity"`
	UsedQuantity      int               `json:"usedQuantity"`
	AvailableQuantity int               `json:"availableQuantity"`
	Cost              *decimal.Decimal  `json:"cost"`
	Vendor            string            `json:"vendor"`
	OrganizationID    string            `json:"organizationId"`
	AssignedTo        []string          `json:"assignedTo"`
	LicenseCode       string            `json:"licenseCode"`
	IndividualCodes   map[string]string `json:"individualCodes"`
	Status            string            `json:"status"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
