package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-tracker/internal/application/report"
	"github.com/jhoicas/asset-tracker/internal/application/snapshot"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	infrapdf "github.com/jhoicas/asset-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/asset-tracker/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/asset-tracker/internal/interfaces/http"
	"github.com/jhoicas/asset-tracker/pkg/config"
	"github.com/jhoicas/asset-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	// Los montos viajan como números JSON, igual que en los snapshots existentes.
	decimal.MarshalJSONWithoutQuotes = true

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.DB.File).Msg("abrir base SQLite")
	}
	defer db.Close()

	seeded, err := sqlite.SeedDefaults(ctx, db, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}
	if seeded {
		log.Info().Msg("datos iniciales insertados")
	}

	store := sqlite.NewStore(db)
	views := view.NewComposer(time.Now)

	orgUC := usecase.NewOrganizationUseCase(store, views)
	personUC := usecase.NewPersonUseCase(store, views)
	inventoryUC := usecase.NewInventoryUseCase(store, views)
	snapshots := snapshot.NewManager(store, sqlite.NewBackupRepository(db), cfg.Snapshot.Version)

	// PDF: hoja de custodia y reporte de inventario
	reportUC := report.NewUseCase(orgUC, personUC, inventoryUC, infrapdf.NewMarotoReportGenerator(), time.Now)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:             cfg.App.Name,
		BodyLimitMB:      cfg.HTTP.BodyLimitMB,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		SwaggerFile:      cfg.HTTP.SwaggerFile,
		StaticDir:        cfg.HTTP.StaticDir,
	}, httpRouter.RouterDeps{
		Store:       store,
		OrgUC:       orgUC,
		TeamUC:      usecase.NewTeamUseCase(store, views),
		PersonUC:    personUC,
		AssetUC:     usecase.NewAssetUseCase(store, views),
		LicenseUC:   usecase.NewLicenseUseCase(store, views),
		InventoryUC: inventoryUC,
		DashboardUC: usecase.NewDashboardUseCase(store, views),
		Snapshots:   snapshots,
		Reports:     reportUC,
		Host:        cfg.HTTP.Host,
		Port:        cfg.HTTP.Port,
	}, log)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Str("database", cfg.DB.File).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
