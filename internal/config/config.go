// Package config manages environment configuration.
//
// It reads variables from the process environment (optionally preloaded from a
// `.env` file), maps them into structured Go types, and validates that
// required values are present so the application fails fast on bad or missing
// config. The resulting struct is built once at startup and passed down
// explicitly; there are no ambient configuration globals.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the process
	// environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// Koanf maps env vars with the WORKOUT_ prefix into these fields using "."
// as the nesting delimiter, e.g. WORKOUT_SERVER.PORT -> Server.Port.
//
// Observability is a pointer because it is optional; defaults are injected
// when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior (e.g. SQL logging only in "local").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeout values are interpreted as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// envPrefix is the prefix every configuration variable must carry.
const envPrefix = "WORKOUT_"

// New loads configuration from environment variables, unmarshals it into
// Config, validates it, and applies observability defaults.
func New() (*Config, error) {
	k := koanf.New(".")

	// Only env vars with the WORKOUT_ prefix are read; the prefix is
	// stripped and the remainder lowercased to form the koanf key path.
	// Example: WORKOUT_DATABASE.HOST -> "database.host".
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Enforce the `validate:"required"` tags across the whole tree.
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced so telemetry sees consistent
	// naming regardless of what was configured.
	cfg.Observability.ServiceName = "workout-api"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
