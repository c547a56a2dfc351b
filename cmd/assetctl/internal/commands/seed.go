package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/asset-tracker/internal/infrastructure/sqlite"
)

type SeedCmd struct{}

func (s *SeedCmd) Run(ctx context.Context, globals *Globals) error {
	db, err := sqlite.Open(ctx, globals.DB)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", globals.DB.File, err)
	}
	defer db.Close()

	seeded, err := sqlite.SeedDefaults(ctx, db, time.Now())
	if err != nil {
		return err
	}
	if seeded {
		globals.logger().Info().Str("file", globals.DB.File).Msg("datos iniciales insertados")
	} else {
		globals.logger().Info().Msg("la base ya tiene organizaciones; no se insertó nada")
	}
	return nil
}
