package repository

import (
	"context"

	"github.com/jhoicas/asset-tracker/internal/domain/entity"
)

// Store define el puerto de persistencia de las seis colecciones (DIP).
// Cada mutación reemplaza colecciones completas: no hay actualización parcial de filas.
type Store interface {
	// Read carga las colecciones indicadas (todas si no se indica ninguna).
	// Una colección vacía o inexistente devuelve slice vacío, nunca error de "no encontrado".
	Read(ctx context.Context, names ...entity.Collection) (*entity.Dataset, error)
	// Replace reemplaza atómicamente las colecciones indicadas con el contenido de data.
	// Ante cualquier error el estado previo queda intacto.
	Replace(ctx context.Context, data *entity.Dataset, names ...entity.Collection) error
	Count(ctx context.Context, name entity.Collection) (int, error)
}

// BackupRepository slot único de backup (solo se conserva una generación).
type BackupRepository interface {
	Save(ctx context.Context, raw []byte) error
	// Load devuelve false si nunca se guardó un backup.
	Load(ctx context.Context) ([]byte, bool, error)
	// Delete vacía el slot; no falla si ya estaba vacío.
	Delete(ctx context.Context) error
}
