package entity

import "time"

// Estados de Person.
const (
	PersonActive   = "active"
	PersonInactive = "inactive"
)

// Person colaborador de una organización.
// TeamID se anula (nunca se elimina la persona) cuando se borra el equipo.
// Los activos y licencias de la persona no se guardan aquí: se componen en lectura.
type Person struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Position       string    `json:"position"`
	Status         string    `json:"status"`
	OrganizationID string    `json:"organization_id"`
	TeamID         *string   `json:"team_id"`
	ManagerID      *string   `json:"manager_id"`
	Subordinates   IDList    `json:"subordinates"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ValidPersonStatus indica si s es un estado conocido.
func ValidPersonStatus(s string) bool {
	return s == PersonActive || s == PersonInactive
}
