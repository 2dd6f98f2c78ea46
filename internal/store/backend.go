package store

import (
	"context"
	"fmt"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// Backend is a connection handle to one document database. It is created once
// at startup, shared by every request, and closed on shutdown.
type Backend interface {
	Users() UserStore
	Products() ProductStore

	// Connect verifies that the database is reachable and prepares it
	// (collections, schema validators, migrations). Stores may be used before
	// Connect returns; operations then fail or block per the driver's rules.
	Connect(ctx context.Context) error

	Close(ctx context.Context) error
}

// unavailableBackend stands in for a database that could not be opened.
type unavailableBackend struct {
	reason error
}

// NewUnavailableBackend returns a Backend whose every operation fails with an
// error wrapping ErrUnavailable and the given reason.
func NewUnavailableBackend(reason error) Backend {
	return &unavailableBackend{reason: reason}
}

func (b *unavailableBackend) err() error {
	if b.reason == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, b.reason)
}

func (b *unavailableBackend) Users() UserStore { return unavailableUsers{b} }
func (b *unavailableBackend) Products() ProductStore { return unavailableProducts{b} }
func (b *unavailableBackend) Connect(context.Context) error { return b.err() }
func (b *unavailableBackend) Close(context.Context) error { return nil }

type unavailableUsers struct{ b *unavailableBackend }

func (u unavailableUsers) List(context.Context) ([]*domain.User, error) { return nil, u.b.err() }
func (u unavailableUsers) Create(context.Context, *domain.User) error { return u.b.err() }
func (u unavailableUsers) Update(context.Context, string, domain.UserPatch) (*domain.User, error) {
	return nil, u.b.err()
}
func (u unavailableUsers) Delete(context.Context, string) error { return u.b.err() }

type unavailableProducts struct{ b *unavailableBackend }

func (p unavailableProducts) List(context.Context) ([]*domain.Product, error) {
	return nil, p.b.err()
}
func (p unavailableProducts) Create(context.Context, *domain.Product) error { return p.b.err() }
func (p unavailableProducts) Update(context.Context, string, domain.ProductPatch) (*domain.Product, error) {
	return nil, p.b.err()
}
func (p unavailableProducts) Delete(context.Context, string) error { return p.b.err() }
