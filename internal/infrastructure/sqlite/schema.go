package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		organization_id TEXT NOT NULL,
		manager_id TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (organization_id) REFERENCES organizations (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS people (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		position TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		organization_id TEXT NOT NULL,
		team_id TEXT,
		manager_id TEXT,
		subordinates TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (organization_id) REFERENCES organizations (id) ON DELETE CASCADE,
		FOREIGN KEY (team_id) REFERENCES teams (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		serial_number TEXT NOT NULL,
		status TEXT NOT NULL,
		condition TEXT NOT NULL,
		value TEXT NOT NULL,
		purchase_date TEXT NOT NULL,
		assigned_to TEXT,
		organization_id TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (organization_id) REFERENCES organizations (id) ON DELETE CASCADE,
		FOREIGN KEY (assigned_to) REFERENCES people (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS licenses (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		expiration_date TEXT NOT NULL,
		total_quantity INTEGER NOT NULL,
		cost TEXT,
		vendor TEXT,
		organization_id TEXT NOT NULL,
		assigned_to TEXT NOT NULL DEFAULT '[]',
		license_code TEXT,
		individual_codes TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (organization_id) REFERENCES organizations (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		min_quantity INTEGER NOT NULL,
		location TEXT NOT NULL,
		organization_id TEXT NOT NULL,
		cost_per_unit TEXT NOT NULL,
		supplier TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (organization_id) REFERENCES organizations (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_teams_org ON teams (organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_people_org ON people (organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_people_team ON people (team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assets_org ON assets (organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assets_assigned ON assets (assigned_to)`,
	`CREATE INDEX IF NOT EXISTS idx_licenses_org ON licenses (organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_org ON inventory (organization_id)`,
	`CREATE TABLE IF NOT EXISTS snapshot_backups (
		id TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

// EnsureSchema crea las tablas si no existen. Idempotente: se ejecuta en cada arranque.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
