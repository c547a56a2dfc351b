package dto

import "time"

// CreatePersonRequest entrada para crear una persona.
type CreatePersonRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	Email        string   `json:"email" validate:"required,email"`
	Position     string   `json:"position"`
	Status       string   `json:"status" validate:"omitempty,oneof=active inactive"`
	TeamID       *string  `json:"teamId"`
	ManagerID    *string  `json:"managerId"`
	Subordinates []string `json:"subordinates"`
}

// UpdatePersonRequest entrada para actualizar una persona. TeamID/ManagerID "" desasignan.
type UpdatePersonRequest struct {
	Name         *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Position     *string   `json:"position"`
	Status       *string   `json:"status" validate:"omitempty,oneof=active inactive"`
	TeamID       *string   `json:"teamId"`
	ManagerID    *string   `json:"managerId"`
	Subordinates *[]string `json:"subordinates"`
}

// PersonResponse salida de una persona con sus activos y licencias compuestos en lectura.
type PersonResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Position       string            `json:"position"`
	Status         string            `json:"status"`
	OrganizationID string            `json:"organizationId"`
	TeamID         *string           `json:"teamId"`
	TeamName       string            `json:"teamName,omitempty"`
	ManagerID      *string           `json:"managerId"`
	Subordinates   []string          `json:"subordinates"`
	Assets         []AssetResponse   `json:"assets"`
	Licenses       []LicenseResponse `json:"licenses"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
