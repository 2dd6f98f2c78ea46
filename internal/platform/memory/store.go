// Package memory provides an in-process store.Backend. It keeps each
// collection in a map guarded by a RWMutex and hands out copies, so callers
// never share state with the store. Used by tests and by `memory://` URLs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

// Backend is an in-memory implementation of store.Backend.
// It is safe for concurrent use.
type Backend struct {
	users    *UserStore
	products *ProductStore
}

// NewBackend returns an empty in-memory backend.
func NewBackend() *Backend {
	return &Backend{
		users:    NewUserStore(),
		products: NewProductStore(),
	}
}

var _ store.Backend = (*Backend)(nil)

func (b *Backend) Users() store.UserStore       { return b.users }
func (b *Backend) Products() store.ProductStore { return b.products }

// Connect always succeeds; there is nothing to reach.
func (b *Backend) Connect(ctx context.Context) error { return ctx.Err() }

func (b *Backend) Close(context.Context) error { return nil }

// collection keeps documents in insertion order so List is stable.
type collection[T any] struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// insert assigns a fresh id and stores the document built for it.
func (c *collection[T]) insert(build func(id string) T) T {
	id := uuid.NewString()
	doc := build(id)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID[id] = doc
	c.order = append(c.order, id)
	return doc
}

// modify runs fn on the stored document under the write lock and stores the result.
func (c *collection[T]) modify(id string, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	doc = fn(doc)
	c.byID[id] = doc
	return doc, true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// UserStore is the in-memory users collection.
type UserStore struct {
	docs *collection[domain.User]
}

func NewUserStore() *UserStore {
	return &UserStore{docs: newCollection[domain.User]()}
}

var _ store.UserStore = (*UserStore)(nil)

func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs := s.docs.list()
	users := make([]*domain.User, 0, len(docs))
	for i := range docs {
		u := docs[i]
		users = append(users, &u)
	}
	return users, nil
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	doc := s.docs.insert(func(id string) domain.User {
		u := *user
		u.ID = id
		return u
	})
	user.ID = doc.ID
	return nil
}

func (s *UserStore) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	updated, ok := s.docs.modify(id, func(u domain.User) domain.User {
		patch.Apply(&u)
		return u
	})
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &updated, nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.docs.remove(id) {
		return store.ErrUserNotFound
	}
	return nil
}

// ProductStore is the in-memory products collection.
type ProductStore struct {
	docs *collection[domain.Product]
}

func NewProductStore() *ProductStore {
	return &ProductStore{docs: newCollection[domain.Product]()}
}

var _ store.ProductStore = (*ProductStore)(nil)

func (s *ProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs := s.docs.list()
	products := make([]*domain.Product, 0, len(docs))
	for i := range docs {
		p := docs[i]
		products = append(products, &p)
	}
	return products, nil
}

func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := product.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	doc := s.docs.insert(func(id string) domain.Product {
		p := *product
		p.ID = id
		return p
	})
	product.ID = doc.ID
	return nil
}

func (s *ProductStore) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	updated, ok := s.docs.modify(id, func(p domain.Product) domain.Product {
		patch.Apply(&p)
		return p
	})
	if !ok {
		return nil, store.ErrProductNotFound
	}
	return &updated, nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.docs.remove(id) {
		return store.ErrProductNotFound
	}
	return nil
}
