package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Loads .env into the process environment before config reads it.
	_ "github.com/joho/godotenv/autoload"

	"github.com/fitlabs/workout-api/internal/config"
	"github.com/fitlabs/workout-api/internal/database"
	"github.com/fitlabs/workout-api/internal/handler"
	"github.com/fitlabs/workout-api/internal/logger"
	"github.com/fitlabs/workout-api/internal/middleware"
	"github.com/fitlabs/workout-api/internal/repository"
	"github.com/fitlabs/workout-api/internal/router"
	"github.com/fitlabs/workout-api/internal/server"
	"github.com/fitlabs/workout-api/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer loggerService.Shutdown(10 * time.Second)

	migrateCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := database.Migrate(migrateCtx, log, cfg); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(s, handlers, middlewares)
	s.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown cleanly: %w", err)
	}

	log.Info().Msg("shutdown complete")
	return nil
}
