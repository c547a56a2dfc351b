package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-tracker/cmd/assetctl/internal/commands"
	"github.com/jhoicas/asset-tracker/pkg/config"
	"github.com/jhoicas/asset-tracker/pkg/logger"
)

var (
	version = "dev"
	cli     struct {
		Export       commands.ExportCmd       `cmd:"" help:"Exportar todas las colecciones a JSON"`
		Import       commands.ImportCmd       `cmd:"" help:"Importar un snapshot (reemplaza todo, guarda backup)"`
		Restore      commands.RestoreCmd      `cmd:"" help:"Restaurar el último backup"`
		Clear        commands.ClearCmd        `cmd:"" help:"Borrar todos los datos (guarda backup)"`
		Seed         commands.SeedCmd         `cmd:"" help:"Insertar la organización y el equipo iniciales si la base está vacía"`
		BackupStatus commands.BackupStatusCmd `cmd:"" name:"backup-status" help:"Indicar si existe un backup"`
		Database     string                   `help:"Archivo SQLite." default:"${database}" env:"DATABASE_FILE"`
		Debug        bool                     `help:"Habilitar logs de depuración."`
		Version      kong.VersionFlag
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("assetctl"),
		kong.Description("Operaciones de mantenimiento sobre la base de activos."),
		kong.Vars{
			"version":  version,
			"database": cfg.DB.File,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	level := "info"
	if cli.Debug {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: "development", Level: level, Output: os.Stderr})

	db := cfg.DB
	db.File = cli.Database
	err = cmd.Run(&commands.Globals{
		DB:              db,
		SnapshotVersion: cfg.Snapshot.Version,
		Log:             log,
		Out:             os.Stdout,
		Version:         version,
	})
	cmd.FatalIfErrorf(err)
}
