package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// IDs de los registros sembrados.
const (
	DefaultOrganizationID = "1"
	DefaultTeamID         = "1"
)

// SeedDefaults inserta la organización y el equipo por defecto si no hay organizaciones.
// Devuelve true si sembró. La verificación y los inserts van en una misma transacción.
func SeedDefaults(ctx context.Context, db *sql.DB, now time.Time) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&count); err != nil {
		return false, fmt.Errorf("contar organizaciones: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	ts := formatTime(now)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO organizations (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		DefaultOrganizationID, "Organização Principal", "Organização padrão do sistema", ts, ts,
	); err != nil {
		return false, fmt.Errorf("insert organización por defecto: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO teams (id, name, description, organization_id, manager_id, created_at, updated_at) VALUES (?, ?, ?, ?, NULL, ?, ?)`,
		DefaultTeamID, "Desenvolvimento", "Time de desenvolvimento de software", DefaultOrganizationID, ts, ts,
	); err != nil {
		return false, fmt.Errorf("insert equipo por defecto: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return true, nil
}
