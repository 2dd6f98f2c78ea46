// Package storetest holds the behavioral contract every store.Backend must
// satisfy. Backend packages call RunBackendContract from their own tests.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewBackendFunc returns a connected backend with empty collections.
// The returned cleanup func may be nil.
type NewBackendFunc func(t *testing.T) (store.Backend, func())

// MissingID is a well-formed identifier that no backend will have assigned.
// Backends that cannot parse it must still report not found.
const MissingID = "64b7f0c2a1b2c3d4e5f60718"

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// RunBackendContract runs the user and product collection contracts.
func RunBackendContract(t *testing.T, newBackend NewBackendFunc) {
	t.Run("Users", func(t *testing.T) {
		runUserContract(t, newBackend)
	})
	t.Run("Products", func(t *testing.T) {
		runProductContract(t, newBackend)
	})
}

func open(t *testing.T, newBackend NewBackendFunc) store.Backend {
	t.Helper()
	backend, cleanup := newBackend(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}
	return backend
}

func runUserContract(t *testing.T, newBackend NewBackendFunc) {
	ctx := context.Background()

	t.Run("list on empty collection", func(t *testing.T) {
		users := open(t, newBackend).Users()

		list, err := users.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list, "empty collection must yield an empty slice, not nil")
		assert.Len(t, list, 0)
	})

	t.Run("create assigns id and shows up in list", func(t *testing.T) {
		users := open(t, newBackend).Users()

		user := &domain.User{Name: "John Doe", Email: "johndoe@example.com", Age: 30}
		require.NoError(t, users.Create(ctx, user))
		require.NotEmpty(t, user.ID)

		other := &domain.User{Name: "Jane Doe", Email: "janedoe@example.com", Age: 28}
		require.NoError(t, users.Create(ctx, other))
		assert.NotEqual(t, user.ID, other.ID)

		list, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.ElementsMatch(t, []*domain.User{user, other}, list)
	})

	t.Run("duplicate emails are allowed", func(t *testing.T) {
		users := open(t, newBackend).Users()

		require.NoError(t, users.Create(ctx, &domain.User{Name: "A", Email: "same@example.com", Age: 1}))
		require.NoError(t, users.Create(ctx, &domain.User{Name: "B", Email: "same@example.com", Age: 2}))

		list, err := users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("update changes present fields only", func(t *testing.T) {
		users := open(t, newBackend).Users()

		user := &domain.User{Name: "John Doe", Email: "johndoe@example.com", Age: 30}
		require.NoError(t, users.Create(ctx, user))

		updated, err := users.Update(ctx, user.ID, domain.UserPatch{Age: floatPtr(31), Name: strPtr("Johnny")})
		require.NoError(t, err)
		assert.Equal(t, &domain.User{ID: user.ID, Name: "Johnny", Email: "johndoe@example.com", Age: 31}, updated)

		list, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, updated, list[0])
	})

	t.Run("empty patch returns current document", func(t *testing.T) {
		users := open(t, newBackend).Users()

		user := &domain.User{Name: "John Doe", Email: "johndoe@example.com", Age: 30}
		require.NoError(t, users.Create(ctx, user))

		got, err := users.Update(ctx, user.ID, domain.UserPatch{})
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("update and delete on unknown id", func(t *testing.T) {
		users := open(t, newBackend).Users()

		existing := &domain.User{Name: "Keep", Email: "keep@example.com", Age: 40}
		require.NoError(t, users.Create(ctx, existing))

		for _, id := range []string{MissingID, "not-a-valid-id"} {
			_, err := users.Update(ctx, id, domain.UserPatch{Age: floatPtr(1)})
			assert.True(t, errors.Is(err, store.ErrUserNotFound), "update %q: got %v", id, err)

			_, err = users.Update(ctx, id, domain.UserPatch{})
			assert.True(t, errors.Is(err, store.ErrUserNotFound), "empty update %q: got %v", id, err)

			err = users.Delete(ctx, id)
			assert.True(t, errors.Is(err, store.ErrUserNotFound), "delete %q: got %v", id, err)
		}

		list, err := users.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*domain.User{existing}, list)
	})

	t.Run("delete removes document", func(t *testing.T) {
		users := open(t, newBackend).Users()

		gone := &domain.User{Name: "Gone", Email: "gone@example.com", Age: 50}
		kept := &domain.User{Name: "Kept", Email: "kept@example.com", Age: 51}
		require.NoError(t, users.Create(ctx, gone))
		require.NoError(t, users.Create(ctx, kept))

		require.NoError(t, users.Delete(ctx, gone.ID))

		list, err := users.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*domain.User{kept}, list)

		err = users.Delete(ctx, gone.ID)
		assert.True(t, errors.Is(err, store.ErrUserNotFound))
	})
}

func runProductContract(t *testing.T, newBackend NewBackendFunc) {
	ctx := context.Background()

	t.Run("create and list", func(t *testing.T) {
		products := open(t, newBackend).Products()

		empty, err := products.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Len(t, empty, 0)

		product := &domain.Product{Name: "Iced Tea Matcha", Price: 20, Description: "Tea with pistachio"}
		require.NoError(t, products.Create(ctx, product))
		require.NotEmpty(t, product.ID)

		list, err := products.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*domain.Product{product}, list)
	})

	t.Run("update price only", func(t *testing.T) {
		products := open(t, newBackend).Products()

		product := &domain.Product{Name: "Iced Tea Matcha", Price: 20, Description: "Tea with pistachio"}
		require.NoError(t, products.Create(ctx, product))

		updated, err := products.Update(ctx, product.ID, domain.ProductPatch{Price: floatPtr(25)})
		require.NoError(t, err)
		assert.Equal(t, &domain.Product{
			ID:          product.ID,
			Name:        "Iced Tea Matcha",
			Price:       25,
			Description: "Tea with pistachio",
		}, updated)
	})

	t.Run("unknown id", func(t *testing.T) {
		products := open(t, newBackend).Products()

		_, err := products.Update(ctx, MissingID, domain.ProductPatch{Price: floatPtr(1)})
		assert.True(t, errors.Is(err, store.ErrProductNotFound))

		err = products.Delete(ctx, "not-a-valid-id")
		assert.True(t, errors.Is(err, store.ErrProductNotFound))
	})

	t.Run("delete", func(t *testing.T) {
		products := open(t, newBackend).Products()

		product := &domain.Product{Name: "Tea", Price: 1, Description: "Green"}
		require.NoError(t, products.Create(ctx, product))
		require.NoError(t, products.Delete(ctx, product.ID))

		list, err := products.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 0)
	})
}
