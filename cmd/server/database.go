package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/platform/memory"
	"github.com/phrazzld/catalog-api/internal/platform/mongodb"
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/store"
)

// errNoDatabaseURL is the reason reported by the unavailable store when no
// connection string is configured.
var errNoDatabaseURL = errors.New("no database URL configured")

// openStore builds the document store named by the configured URL. It does
// no network I/O; connectivity is checked later by connectStore. Any problem
// with the URL yields a store whose every operation fails, so the server
// still starts.
func openStore(cfg *config.Config, logger *slog.Logger) store.Backend {
	backend, err := newBackend(cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open document store", redact.Attr(err))
		return store.NewUnavailableBackend(err)
	}
	return backend
}

func newBackend(cfg config.DatabaseConfig, logger *slog.Logger) (store.Backend, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errNoDatabaseURL
	}

	scheme, _, ok := strings.Cut(cfg.URL, "://")
	if !ok {
		return nil, fmt.Errorf("database URL has no scheme")
	}

	switch scheme {
	case "mongodb", "mongodb+srv":
		return mongodb.Open(cfg.URL, cfg.Name, logger)
	case "postgres", "postgresql":
		if _, err := url.Parse(cfg.URL); err != nil {
			return nil, fmt.Errorf("invalid postgres URL: %w", err)
		}
		return postgres.Open(cfg.URL, logger)
	case "memory":
		return memory.NewBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported database URL scheme %q", scheme)
	}
}

// connectStore verifies connectivity in the background. The outcome is only
// logged; a failure never stops the server. The returned channel receives
// the result and is then closed.
func connectStore(backend store.Backend, timeout time.Duration, logger *slog.Logger) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		err := backend.Connect(ctx)
		if err != nil {
			logger.Error("failed to connect to document store",
				redact.Attr(err),
				slog.Duration("elapsed", time.Since(start)))
		} else {
			logger.Info("connected to document store",
				slog.Duration("elapsed", time.Since(start)))
		}
		done <- err
	}()

	return done
}
