// Package sqlite implementa el almacenamiento de las seis colecciones sobre un archivo SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/asset-tracker/pkg/config"
)

// Open abre (o crea) el archivo de base de datos y asegura el esquema.
// foreign_keys, WAL y busy_timeout se aplican en cada conexión vía DSN.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	path := strings.TrimSpace(cfg.File)
	if path == "" {
		return nil, fmt.Errorf("ruta de base de datos requerida")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de base de datos: %w", err)
		}
	}

	busy := cfg.BusyTimeoutMS
	if busy <= 0 {
		busy = 5000
	}
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", cleanPath, busy)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Una sola conexión: cada Replace se serializa en el motor.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
