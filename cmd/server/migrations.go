package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
	"github.com/phrazzld/catalog-api/internal/redact"
)

// errMigrationsNeedPostgres is returned when -migrate is used with a
// database that has no migrations.
var errMigrationsNeedPostgres = errors.New("migrations require a postgres database URL")

// migrateCommands are the values accepted by the -migrate flag.
var migrateCommands = map[string]bool{"up": true, "down": true, "status": true}

// handleMigrations runs one migration command against the configured
// postgres database and returns. It never starts the HTTP server.
func handleMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if !migrateCommands[command] {
		return fmt.Errorf("unknown migrate command %q (want up, down or status)", command)
	}

	migrationLogger := logger.With(
		slog.String("correlation_id", uuid.NewString()),
		slog.String("component", "migrations"),
		slog.String("command", command),
	)

	backend, err := newBackend(cfg.Database, migrationLogger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			migrationLogger.Error("failed to close database", redact.Attr(err))
		}
	}()

	pg, ok := backend.(*postgres.Backend)
	if !ok {
		return errMigrationsNeedPostgres
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	migrationLogger.Info("starting migration operation")

	switch command {
	case "up":
		err = postgres.Migrate(ctx, pg.DB(), migrationLogger)
	case "down":
		err = postgres.MigrateDown(ctx, pg.DB(), migrationLogger)
	case "status":
		err = logMigrationStatus(ctx, pg, migrationLogger)
	}
	if err != nil {
		return err
	}

	migrationLogger.Info("migration operation completed")
	return nil
}

func logMigrationStatus(ctx context.Context, pg *postgres.Backend, logger *slog.Logger) error {
	statuses, err := postgres.MigrationStatus(ctx, pg.DB())
	if err != nil {
		return err
	}

	for _, s := range statuses {
		attrs := []any{
			slog.Int64("version", s.Source.Version),
			slog.String("path", s.Source.Path),
			slog.String("state", string(s.State)),
		}
		if !s.AppliedAt.IsZero() {
			attrs = append(attrs, slog.Time("applied_at", s.AppliedAt))
		}
		logger.Info("migration status", attrs...)
	}
	return nil
}
