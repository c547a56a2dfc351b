package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/asset-tracker/internal/application/snapshot"
	"github.com/jhoicas/asset-tracker/internal/infrastructure/sqlite"
	"github.com/jhoicas/asset-tracker/pkg/config"
	"github.com/jhoicas/asset-tracker/pkg/logger"
)

// ErrNotConfirmed se devuelve cuando una operación destructiva no trae --yes.
var ErrNotConfirmed = errors.New("operación destructiva: agregue --yes para confirmar")

type Globals struct {
	DB              config.DBConfig
	SnapshotVersion string
	Log             *logger.Logger
	Out             io.Writer
	Version         string
}

// openManager abre la base (creando el esquema si falta) y arma el gestor de snapshots.
// El llamador debe cerrar la conexión devuelta.
func (g *Globals) openManager(ctx context.Context) (*sql.DB, *snapshot.Manager, error) {
	db, err := sqlite.Open(ctx, g.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir %s: %w", g.DB.File, err)
	}
	m := snapshot.NewManager(sqlite.NewStore(db), sqlite.NewBackupRepository(db), g.SnapshotVersion)
	return db, m, nil
}

func (g *Globals) logger() *logger.Logger {
	if g.Log == nil {
		return logger.Nop()
	}
	return g.Log
}

func confirm(yes bool) error {
	if !yes {
		return ErrNotConfirmed
	}
	return nil
}
