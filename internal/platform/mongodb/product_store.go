package mongodb

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
}

func (d productDocument) toDomain() *domain.Product {
	return &domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
	}
}

// ProductStore implements store.ProductStore on the products collection.
type ProductStore struct {
	docs collection[productDocument]
}

func NewProductStore(coll *mongo.Collection) *ProductStore {
	return &ProductStore{docs: collection[productDocument]{coll: coll, notFound: store.ErrProductNotFound}}
}

var _ store.ProductStore = (*ProductStore)(nil)

func (s *ProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	docs, err := s.docs.findAll(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toDomain())
	}
	return products, nil
}

func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	id, err := s.docs.insert(ctx, productDocument{
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
	})
	if err != nil {
		return err
	}
	product.ID = id
	return nil
}

func (s *ProductStore) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	doc, err := s.docs.update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	return s.docs.delete(ctx, id)
}
