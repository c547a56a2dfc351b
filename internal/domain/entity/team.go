package entity

import "time"

// Team equipo de una organización. ManagerID es una referencia débil a Person (puede quedar colgando).
// La cantidad de personas no se persiste: se deriva en lectura.
type Team struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	OrganizationID string    `json:"organization_id"`
	ManagerID      *string   `json:"manager_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
