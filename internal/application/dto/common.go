package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse confirmación de operaciones sin cuerpo propio.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// HealthResponse respuesta de GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Port      int    `json:"port"`
	Host      string `json:"host"`
	Database  string `json:"database"`
}

// LegacyErrorResponse cuerpo de error de /api/database, compatible con el cliente existente.
type LegacyErrorResponse struct {
	Error string `json:"error"`
}
