package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kfalter/chirper-api/internal/api"
	apiMiddleware "github.com/kfalter/chirper-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// Create API handlers using the application's services
	accountHandler := api.NewAccountHandler(app.accountService)
	messageHandler := api.NewMessageHandler(app.messageService)

	// Register routes. Paths sit at the root, not under /api; that is the
	// published contract of this service.
	r.Post("/register", accountHandler.Register)
	r.Post("/login", accountHandler.Login)

	r.Post("/messages", messageHandler.CreateMessage)
	r.Get("/messages", messageHandler.ListMessages)
	r.Get("/messages/{id}", messageHandler.GetMessage)
	r.Delete("/messages/{id}", messageHandler.DeleteMessage)
	r.Patch("/messages/{id}", messageHandler.UpdateMessageText)

	r.Get("/accounts/{id}/messages", messageHandler.ListMessagesByAccount)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
