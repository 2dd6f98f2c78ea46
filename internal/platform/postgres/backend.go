package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/catalog-api/internal/store"
)

// Backend is a PostgreSQL implementation of store.Backend.
type Backend struct {
	db       *sql.DB
	logger   *slog.Logger
	users    *UserStore
	products *ProductStore
}

var _ store.Backend = (*Backend)(nil)

// Open prepares a connection pool for url. No connection is made until the
// first query or Connect.
func Open(url string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool with reasonable defaults
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Backend{
		db:       db,
		logger:   logger.With(slog.String("component", "postgres")),
		users:    NewUserStore(db),
		products: NewProductStore(db),
	}, nil
}

func (b *Backend) Users() store.UserStore       { return b.users }
func (b *Backend) Products() store.ProductStore { return b.products }

// DB exposes the pool, mainly for tests.
func (b *Backend) DB() *sql.DB { return b.db }

// Connect pings the database and applies pending migrations.
func (b *Backend) Connect(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return Migrate(ctx, b.db, b.logger)
}

func (b *Backend) Close(context.Context) error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
