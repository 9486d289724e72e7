// Package logger configures the application's logging and observability.
//
// It builds the zerolog root logger (console in local, JSON elsewhere), owns
// the optional New Relic application instance, and provides helpers to
// correlate log lines with traces and to bridge pgx query logging into
// zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/fitlabs/workout-api/internal/config"
)

// LoggerService wraps the optional New Relic application.
//
// When New Relic is disabled the service still exists but GetApplication
// returns nil; every caller treats nil as "instrumentation off".
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application instance, or nil when the
// integration is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.nrApp
}

// Shutdown flushes remaining telemetry. Safe to call when disabled.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// New builds the root logger and the observability service from config.
//
// Behavior:
//   - log level and format come from the observability config
//   - "console" format writes human-friendly lines to stderr (local dev)
//   - "json" format writes structured lines to stdout
//   - when New Relic log forwarding is on, the JSON writer is wrapped so log
//     lines carry trace linking metadata
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	service := &LoggerService{}

	if cfg.Observability.NewRelic.Enabled {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.ForwardLogs),
			func(c *newrelic.Config) {
				c.Labels = map[string]string{
					"environment": cfg.Observability.Environment,
				}
			},
		)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic: %w", err)
		}
		service.nrApp = nrApp
	}

	var out io.Writer
	switch cfg.Observability.Logging.Format {
	case "console":
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	default:
		out = os.Stdout
	}

	var log zerolog.Logger
	if service.nrApp != nil && cfg.Observability.Logging.Format == "json" {
		// The zerologWriter decorates each line with New Relic linking
		// metadata so logs appear in context next to the trace.
		nrWriter := zerologWriter.New(out, service.nrApp)
		log = zerolog.New(nrWriter)
	} else {
		log = zerolog.New(out)
	}

	log = log.Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &log, service, nil
}

// WithTraceContext returns a copy of the logger carrying the transaction's
// trace and span ids, so log lines can be joined with distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()
	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}

// NewPgxLogger creates the logger used for pgx query tracing.
//
// It is separate from the root logger so SQL output is tagged and can be
// filtered independently.
func NewPgxLogger(level zerolog.Level) *zerolog.Logger {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
	return &log
}

// GetPgxTraceLogLevel converts a zerolog level into the matching pgx
// tracelog level.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
