package postgres

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

const usersTable = "users"

// userDocument is the JSONB body of a users row.
type userDocument struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Age   float64 `json:"age"`
}

func userFromRecord(rec record[userDocument]) *domain.User {
	return &domain.User{
		ID:    rec.ID,
		Name:  rec.Doc.Name,
		Email: rec.Doc.Email,
		Age:   rec.Doc.Age,
	}
}

// UserStore implements the store.UserStore interface
// using a PostgreSQL JSONB table as the storage backend.
type UserStore struct {
	docs documentTable[userDocument]
}

// NewUserStore accepts a connection or transaction managed by the caller.
func NewUserStore(db store.DBTX) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &UserStore{docs: documentTable[userDocument]{
		db:       db,
		table:    usersTable,
		entity:   "user",
		notFound: store.ErrUserNotFound,
	}}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// List implements store.UserStore.List in insertion order.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	recs, err := s.docs.list(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, userFromRecord(rec))
	}
	return users, nil
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	id, err := s.docs.insert(ctx, userDocument{Name: user.Name, Email: user.Email, Age: user.Age})
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	var body any
	if !patch.IsEmpty() {
		body = patch
	}
	rec, err := s.docs.merge(ctx, id, body)
	if err != nil {
		return nil, err
	}
	return userFromRecord(rec), nil
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.docs.delete(ctx, id)
}
