package store

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// UserStore defines the interface for the users collection.
type UserStore interface {
	// List returns every user in the collection, unfiltered and unpaginated.
	// An empty collection yields an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.User, error)

	// Create saves a new user and sets user.ID to the identifier assigned by
	// the store. Returns ErrInvalidEntity if the store rejects the document.
	Create(ctx context.Context, user *domain.User) error

	// Update applies the patch to the user with the given ID and returns the
	// updated document. Fields not set in the patch are left unchanged.
	// Returns ErrUserNotFound if no user has that ID, including IDs the
	// backend cannot parse.
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)

	// Delete removes the user with the given ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id string) error
}
