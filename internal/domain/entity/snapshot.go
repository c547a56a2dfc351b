package entity

// Snapshot exportación completa de las seis colecciones más metadatos.
// Formato JSON: organizations, teams, people, assets, licenses, inventory, exportDate, version.
type Snapshot struct {
	Dataset
	ExportDate string `json:"exportDate"`
	Version    string `json:"version"`
}
