// Package snapshot exporta e importa el conjunto completo de colecciones y mantiene un único slot de backup.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

// DefaultVersion versión escrita en los snapshots exportados.
const DefaultVersion = "1.0.0"

// Manager orquesta exportación, importación, restauración y borrado total.
type Manager struct {
	store   repository.Store
	backups repository.BackupRepository
	version string
	now     func() time.Time
}

// NewManager construye el gestor. version vacío usa DefaultVersion.
func NewManager(store repository.Store, backups repository.BackupRepository, version string) *Manager {
	if version == "" {
		version = DefaultVersion
	}
	return &Manager{store: store, backups: backups, version: version, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Export lee las seis colecciones y las envuelve con exportDate y version.
func (m *Manager) Export(ctx context.Context) (*entity.Snapshot, error) {
	ds, err := m.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("exportar: %w", err)
	}
	return &entity.Snapshot{
		Dataset:    *ds,
		ExportDate: m.now().UTC().Format(time.RFC3339Nano),
		Version:    m.version,
	}, nil
}

// Parse valida que las seis claves existan y sean arreglos, y decodifica las filas.
// Acepta filas con forma almacenada o con forma de vista (camelCase).
func Parse(raw []byte) (*entity.Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, fmt.Errorf("%w: el documento debe ser un objeto JSON", domain.ErrInvalidSnapshot)
	}

	snap := &entity.Snapshot{Dataset: *entity.NewDataset()}
	for _, c := range entity.AllCollections {
		field, ok := doc[string(c)]
		trimmed := bytes.TrimSpace(field)
		if !ok || len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, fmt.Errorf("%w: %s debe ser un arreglo", domain.ErrInvalidSnapshot, c)
		}
		rows, err := view.ToStoredRecords(c, trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
		}
		if err := snap.Decode(c, rows); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
		}
	}
	if err := snap.CheckLicenseCapacity(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	snap.ReconcileAssets()
	if v, ok := doc["exportDate"]; ok {
		_ = json.Unmarshal(v, &snap.ExportDate)
	}
	if v, ok := doc["version"]; ok {
		_ = json.Unmarshal(v, &snap.Version)
	}
	return snap, nil
}

// Import valida el documento; si es inválido no toca el almacenamiento ni el backup.
// Si es válido, guarda un backup del estado actual (pisando el anterior) y reemplaza las seis colecciones.
// Si el reemplazo falla, el slot vuelve a su contenido previo.
func (m *Manager) Import(ctx context.Context, raw []byte) error {
	snap, err := Parse(raw)
	if err != nil {
		return err
	}
	if err := snap.CheckReferences(); err != nil {
		return fmt.Errorf("importar: %w", err)
	}
	snap.StampMissingTimes(m.now().UTC())

	prev, hadPrev, err := m.backups.Load(ctx)
	if err != nil {
		return fmt.Errorf("importar: %w", err)
	}
	if err := m.backup(ctx); err != nil {
		return err
	}
	if err := m.store.Replace(ctx, &snap.Dataset); err != nil {
		m.rollbackBackup(ctx, prev, hadPrev)
		return fmt.Errorf("importar: %w", err)
	}
	return nil
}

// RestoreBackup vuelve al último backup. Como pasa por Import, el estado previo a la restauración
// queda a su vez como nuevo backup: restaurar dos veces seguidas alterna entre ambos estados.
func (m *Manager) RestoreBackup(ctx context.Context) error {
	raw, ok, err := m.backups.Load(ctx)
	if err != nil {
		return fmt.Errorf("restaurar: %w", err)
	}
	if !ok {
		return domain.ErrNoBackup
	}
	return m.Import(ctx, raw)
}

// ClearAllData guarda un backup y vacía las seis colecciones.
func (m *Manager) ClearAllData(ctx context.Context) error {
	if err := m.backup(ctx); err != nil {
		return err
	}
	if err := m.store.Replace(ctx, entity.NewDataset()); err != nil {
		return fmt.Errorf("borrar datos: %w", err)
	}
	return nil
}

// HasBackup indica si existe un backup.
func (m *Manager) HasBackup(ctx context.Context) (bool, error) {
	_, ok, err := m.backups.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("consultar backup: %w", err)
	}
	return ok, nil
}

// rollbackBackup deja el slot como estaba antes de un Import fallido.
// Es best-effort: el error original del Import es el que se informa.
func (m *Manager) rollbackBackup(ctx context.Context, prev []byte, hadPrev bool) {
	if hadPrev {
		_ = m.backups.Save(ctx, prev)
		return
	}
	_ = m.backups.Delete(ctx)
}

func (m *Manager) backup(ctx context.Context) error {
	snap, err := m.Export(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serializar backup: %w", err)
	}
	if err := m.backups.Save(ctx, raw); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	return nil
}
