package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kfalter/chirper-api/internal/config"
	"github.com/kfalter/chirper-api/internal/platform/postgres"
	"github.com/kfalter/chirper-api/internal/service"
	"github.com/kfalter/chirper-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (interface-typed for proper abstraction)
	accountStore store.AccountStore
	messageStore store.MessageStore

	// Application services
	accountService service.AccountService
	messageService service.MessageService
}

// newApplication connects to the database, brings the schema up to date,
// and wires stores and services together. Dependencies are injected via
// constructors throughout; nothing here is package-global.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database after migration failure",
				"error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	accountStore := postgres.NewAccountStore(db, logger)
	messageStore := postgres.NewMessageStore(db, logger)

	accountService, err := service.NewAccountService(db, accountStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	messageService, err := service.NewMessageService(messageStore, accountStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		accountStore:   accountStore,
		messageStore:   messageStore,
		accountService: accountService,
		messageService: messageService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
			return
		}
		app.logger.Info("Database connection closed")
	}
}
