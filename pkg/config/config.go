package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	DB       DBConfig
	Snapshot SnapshotConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host             string
	Port             int
	StaticDir        string // build del frontend (SPA); vacío = no se sirve
	SwaggerFile      string
	CORSAllowOrigins string
	BodyLimitMB      int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración del archivo SQLite.
type DBConfig struct {
	File          string
	BusyTimeoutMS int
}

// BusyTimeout devuelve el busy_timeout como duración.
func (c DBConfig) BusyTimeout() time.Duration {
	return time.Duration(c.BusyTimeoutMS) * time.Millisecond
}

// SnapshotConfig metadatos de los snapshots de exportación.
type SnapshotConfig struct {
	Version string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATABASE_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "asset-tracker"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:             getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:             getInt(v, "HTTP_PORT", getInt(v, "PORT", 8080)),
			StaticDir:        getString(v, "STATIC_DIR", "dist"),
			SwaggerFile:      getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
			CORSAllowOrigins: getString(v, "CORS_ALLOW_ORIGINS", "*"),
			BodyLimitMB:      getInt(v, "HTTP_BODY_LIMIT_MB", 10),
		},
		DB: DBConfig{
			File:          getString(v, "DATABASE_FILE", "database/app.sqlite"),
			BusyTimeoutMS: getInt(v, "DB_BUSY_TIMEOUT_MS", 5000),
		},
		Snapshot: SnapshotConfig{
			Version: getString(v, "SNAPSHOT_VERSION", "1.0.0"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if strings.TrimSpace(cfg.DB.File) == "" {
		return nil, fmt.Errorf("DATABASE_FILE es requerido")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
