// Package main implements the entry point for the catalog API server,
// which serves CRUD endpoints for users and products over a document store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/catalog-api/internal/config"
)

// main loads configuration, sets up logging, opens the document store and
// runs the HTTP server until SIGINT or SIGTERM. With -migrate it runs a
// postgres migration command instead and exits.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// options are the command-line flags.
type options struct {
	migrate string
}

func parseFlags(args []string) (options, error) {
	var opts options

	flags := flag.NewFlagSet("server", flag.ContinueOnError)
	flags.StringVar(&opts.migrate, "migrate", "", "run a postgres migration command (up, down, status) and exit")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if opts.migrate != "" && !migrateCommands[opts.migrate] {
		return opts, fmt.Errorf("unknown migrate command %q (want up, down or status)", opts.migrate)
	}
	return opts, nil
}

func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	cfg, l, err := initializeApp()
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		return handleMigrations(ctx, cfg, opts.migrate, l)
	}

	app := newApplication(cfg, l, openStore(cfg, l))
	return app.Run(ctx)
}

// loadDotEnv reads variables from path into the environment without
// overriding ones that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// initializeApp loads configuration and sets up the logger.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	logConfig(l, cfg)
	return cfg, l, nil
}

func logConfig(l *slog.Logger, cfg *config.Config) {
	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"public_url", cfg.Server.PublicURL)

	if cfg.Database.URL != "" {
		l.Debug("Database configuration",
			"url_present", true,
			"database", cfg.Database.Name,
			"connect_timeout", cfg.Database.ConnectTimeout)
	} else {
		l.Warn("no database URL configured, store operations will fail")
	}
}
