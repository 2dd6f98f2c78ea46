package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/store"
)

// shutdownTimeout bounds both the HTTP drain and closing the store.
const shutdownTimeout = 10 * time.Second

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// The store handle is built once and injected into every handler.
	backend store.Backend
}

// newApplication wires the application around an already opened store.
func newApplication(cfg *config.Config, logger *slog.Logger, backend store.Backend) *application {
	return &application{
		config:  cfg,
		logger:  logger,
		backend: backend,
	}
}

// Run starts the connectivity check and the HTTP server, and blocks until
// ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	connectStore(app.backend, app.config.Database.ConnectTimeout, app.logger)

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if app.backend != nil {
		if err := app.backend.Close(ctx); err != nil {
			app.logger.Error("Error closing document store", redact.Attr(err))
		}
	}

	app.logger.Info("Application shutdown completed")
}
