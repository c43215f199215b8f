// Package main implements the entry point for the chirper API server,
// a small social-media backend handling account registration/login and
// message CRUD over HTTP, backed by PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/kfalter/chirper-api/internal/config"
	"github.com/kfalter/chirper-api/internal/platform/logger"
)

// main initializes configuration, logging, the database, and the dependency
// graph, then runs the HTTP server until it receives a shutdown signal.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components. Returns the ready application or an
// initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
