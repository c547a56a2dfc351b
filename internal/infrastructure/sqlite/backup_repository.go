package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

var _ repository.BackupRepository = (*BackupRepo)(nil)

const latestBackupID = "latest"

// BackupRepo slot único de backup en la tabla snapshot_backups.
type BackupRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewBackupRepository construye el adaptador del slot de backup.
func NewBackupRepository(db *sql.DB) *BackupRepo {
	return &BackupRepo{db: db, now: time.Now}
}

// Save sobrescribe el backup anterior.
func (r *BackupRepo) Save(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshot_backups (id, payload, created_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		latestBackupID, string(raw), formatTime(r.now()),
	)
	if err != nil {
		return fmt.Errorf("guardar backup: %w", err)
	}
	return nil
}

// Load devuelve el último backup; false si no existe.
func (r *BackupRepo) Load(ctx context.Context) ([]byte, bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM snapshot_backups WHERE id = ?`, latestBackupID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("leer backup: %w", err)
	}
	return []byte(payload), true, nil
}

// Delete vacía el slot.
func (r *BackupRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshot_backups WHERE id = ?`, latestBackupID); err != nil {
		return fmt.Errorf("borrar backup: %w", err)
	}
	return nil
}
