package postgres

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		body, err := fs.ReadFile(migrationsFS, "migrations/"+e.Name())
		require.NoError(t, err)
		text := string(body)
		assert.True(t, strings.Contains(text, "-- +goose Up"), "%s has no Up section", e.Name())
		assert.True(t, strings.Contains(text, "-- +goose Down"), "%s has no Down section", e.Name())
	}

	first, err := fs.ReadFile(migrationsFS, "migrations/"+entries[0].Name())
	require.NoError(t, err)
	for _, table := range []string{usersTable, productsTable} {
		assert.Contains(t, string(first), "CREATE TABLE IF NOT EXISTS "+table)
	}
}

func TestMigrationsRequireDatabase(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Error(t, Migrate(ctx, nil, log))
	assert.Error(t, MigrateDown(ctx, nil, log))

	_, err := MigrationStatus(ctx, nil)
	assert.Error(t, err)
}
