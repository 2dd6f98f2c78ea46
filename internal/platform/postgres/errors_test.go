package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock PgError creation helper
func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		SchemaName:     "public",
		TableName:      "users",
		ColumnName:     "doc",
		ConstraintName: "users_doc_required",
	}
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "check violation", err: newPgError("23514"), wantIs: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), wantIs: store.ErrInvalidEntity},
		{name: "invalid json", err: newPgError("22P02"), wantIs: store.ErrInvalidEntity},
		{
			name:   "wrapped check violation",
			err:    fmt.Errorf("exec: %w", newPgError("23514")),
			wantIs: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, errors.Is(postgres.MapError(tc.err), tc.wantIs))
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.MapError(nil))
	})

	t.Run("unmapped errors pass through", func(t *testing.T) {
		t.Parallel()
		unique := newPgError("23505")
		assert.Equal(t, error(unique), postgres.MapError(unique))

		generic := errors.New("connection refused")
		assert.Equal(t, generic, postgres.MapError(generic))
	})

	t.Run("check violation names constraint", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, postgres.MapError(newPgError("23514")).Error(), "users_doc_required")
	})
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()
	assert.True(t, postgres.IsNotFoundError(sql.ErrNoRows))
	assert.True(t, postgres.IsNotFoundError(store.ErrProductNotFound))
	assert.False(t, postgres.IsNotFoundError(errors.New("boom")))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	err := postgres.CheckRowsAffected(MockResult{rowsAffected: 1}, "user")
	require.NoError(t, err)

	err = postgres.CheckRowsAffected(MockResult{rowsAffected: 0}, "user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Contains(t, err.Error(), "user not found")

	err = postgres.CheckRowsAffected(MockResult{rowsAffected: 0}, "")
	assert.Equal(t, store.ErrNotFound, err)

	err = postgres.CheckRowsAffected(MockResult{err: errors.New("driver failure")}, "user")
	assert.Contains(t, err.Error(), "failed to get rows affected")

	err = postgres.CheckRowsAffected(nil, "user")
	assert.Error(t, err)
}
