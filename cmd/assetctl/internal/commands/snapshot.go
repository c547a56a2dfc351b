package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jhoicas/asset-tracker/internal/domain/entity"
)

type ExportCmd struct {
	Out string `help:"Archivo de salida; vacío escribe en stdout" short:"o" default:""`
}

func (e *ExportCmd) Run(ctx context.Context, globals *Globals) error {
	db, m, err := globals.openManager(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := m.Export(ctx)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	raw = append(raw, '\n')

	if e.Out == "" {
		_, err = globals.Out.Write(raw)
		return err
	}
	if err := os.WriteFile(e.Out, raw, 0o600); err != nil {
		return fmt.Errorf("escribir %s: %w", e.Out, err)
	}
	withCounts(globals.logger().Info(), &snap.Dataset).Str("file", e.Out).Msg("snapshot exportado")
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Snapshot JSON a importar" type:"existingfile"`
	Yes  bool   `help:"Confirmar el reemplazo de todos los datos"`
}

func (i *ImportCmd) Run(ctx context.Context, globals *Globals) error {
	raw, err := os.ReadFile(i.File)
	if err != nil {
		return fmt.Errorf("leer %s: %w", i.File, err)
	}
	if err := confirm(i.Yes); err != nil {
		return err
	}
	db, m, err := globals.openManager(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := m.Import(ctx, raw); err != nil {
		return err
	}
	globals.logger().Info().Str("file", i.File).Msg("snapshot importado; el estado anterior quedó como backup")
	return nil
}

type RestoreCmd struct {
	Yes bool `help:"Confirmar la restauración"`
}

func (r *RestoreCmd) Run(ctx context.Context, globals *Globals) error {
	if err := confirm(r.Yes); err != nil {
		return err
	}
	db, m, err := globals.openManager(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := m.RestoreBackup(ctx); err != nil {
		return err
	}
	globals.logger().Info().Msg("backup restaurado")
	return nil
}

type ClearCmd struct {
	Yes bool `help:"Confirmar el borrado de todos los datos"`
}

func (c *ClearCmd) Run(ctx context.Context, globals *Globals) error {
	if err := confirm(c.Yes); err != nil {
		return err
	}
	db, m, err := globals.openManager(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := m.ClearAllData(ctx); err != nil {
		return err
	}
	globals.logger().Info().Msg("datos eliminados; el estado anterior quedó como backup")
	return nil
}

type BackupStatusCmd struct{}

func (b *BackupStatusCmd) Run(ctx context.Context, globals *Globals) error {
	db, m, err := globals.openManager(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	ok, err := m.HasBackup(ctx)
	if err != nil {
		return err
	}
	if ok {
		_, err = fmt.Fprintln(globals.Out, "backup disponible")
	} else {
		_, err = fmt.Fprintln(globals.Out, "sin backup")
	}
	return err
}

// withCounts agrega al evento la cantidad de filas de cada colección.
func withCounts(ev *zerolog.Event, ds *entity.Dataset) *zerolog.Event {
	for _, c := range entity.AllCollections {
		ev = ev.Int(string(c), ds.Len(c))
	}
	return ev
}
