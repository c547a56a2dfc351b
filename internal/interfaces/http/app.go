package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/asset-tracker/pkg/logger"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name             string
	BodyLimitMB      int
	CORSAllowOrigins string
	SwaggerFile      string // vacío o inexistente = sin /docs
	StaticDir        string // vacío o sin index.html = sin SPA
}

// NewApp arma la aplicación Fiber con middlewares, rutas de la API, Swagger UI y la SPA.
func NewApp(cfg AppConfig, deps RouterDeps, log *logger.Logger) *fiber.App {
	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    bodyLimit * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})
	app.Use(RequestLogger(log.Component("http")))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: nonEmpty(cfg.CORSAllowOrigins, "*")}))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    "Asset Tracker API",
			}))
		} else {
			log.Warn().Str("file", cfg.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	Router(app, deps)

	if ServeSPA(app, cfg.StaticDir) {
		log.Info().Str("dir", cfg.StaticDir).Msg("sirviendo frontend")
	}
	return app
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
