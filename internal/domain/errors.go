package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidSnapshot   = errors.New("formato de snapshot inválido")
	ErrNoBackup          = errors.New("ningún backup encontrado")
	ErrUnknownCollection = errors.New("colección desconocida")
	ErrCapacityReached   = errors.New("licencia sin cupos disponibles")
)
