package dto

import "time"

// CreateTeamRequest entrada para crear un equipo.
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description string  `json:"description"`
	ManagerID   *string `json:"managerId"`
}

// UpdateTeamRequest entrada para actualizar un equipo. ManagerID "" lo desasigna.
type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	ManagerID   *string `json:"managerId"`
}

// TeamMemberRequest cuerpo de POST /teams/:id/members.
type TeamMemberRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

// TeamResponse salida de un equipo. PeopleCount = personas activas del equipo.
type TeamResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	OrganizationID string    `json:"organizationId"`
	ManagerID      *string   `json:"managerId"`
	PeopleCount    int       `json:"peopleCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
