package entity

import "time"

// Organization raíz de la tenencia; al eliminarla se eliminan todas sus colecciones dependientes.
type Organization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
