package mongodb

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userDocument is the stored shape of a user.
type userDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Age   float64            `bson:"age"`
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Email: d.Email,
		Age:   d.Age,
	}
}

// UserStore implements store.UserStore on the users collection.
type UserStore struct {
	docs collection[userDocument]
}

// NewUserStore wraps an existing collection handle.
func NewUserStore(coll *mongo.Collection) *UserStore {
	return &UserStore{docs: collection[userDocument]{coll: coll, notFound: store.ErrUserNotFound}}
}

var _ store.UserStore = (*UserStore)(nil)

func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	docs, err := s.docs.findAll(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	id, err := s.docs.insert(ctx, userDocument{
		Name:  user.Name,
		Email: user.Email,
		Age:   user.Age,
	})
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (s *UserStore) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Age != nil {
		set["age"] = *patch.Age
	}

	doc, err := s.docs.update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.docs.delete(ctx, id)
}
