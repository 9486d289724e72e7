package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups all configuration related to telemetry:
// structured logging behavior and the optional New Relic APM integration.
//
// It is intentionally optional at the root level; DefaultObservabilityConfig
// supplies working values when the block is omitted.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces. It is forced to
	// "workout-api" at load time, regardless of configuration.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment labels telemetry by runtime environment
	// (local, staging, production, ...).
	Environment string `koanf:"environment" validate:"required"`

	// Logging controls the structured logger.
	Logging LoggingConfig `koanf:"logging" validate:"required"`

	// NewRelic controls the APM/tracing integration.
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the log output format: "json" or "console".
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold flags database queries slower than this duration.
	// Supplied as a parseable duration string ("250ms", "1s").
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds the New Relic agent settings.
// When Enabled is false the rest of the block is ignored and every
// instrumentation point degrades to a no-op.
type NewRelicConfig struct {
	Enabled    bool   `koanf:"enabled"`
	LicenseKey string `koanf:"license_key"`

	// ForwardLogs enables in-agent log forwarding (logs-in-context).
	ForwardLogs bool `koanf:"forward_logs"`
}

// DefaultObservabilityConfig returns the defaults used when no observability
// block is configured: info-level JSON logs, New Relic disabled.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "workout-api",
		Environment: "local",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 250 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			Enabled: false,
		},
	}
}

// Validate enforces the constraints that struct tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}

	if c.NewRelic.Enabled && c.NewRelic.LicenseKey == "" {
		return fmt.Errorf("new relic enabled but no license key configured")
	}

	return nil
}
