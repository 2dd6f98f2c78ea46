package postgres

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

const productsTable = "products"

type productDocument struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func productFromRecord(rec record[productDocument]) *domain.Product {
	return &domain.Product{
		ID:          rec.ID,
		Name:        rec.Doc.Name,
		Price:       rec.Doc.Price,
		Description: rec.Doc.Description,
	}
}

// ProductStore implements store.ProductStore on the products table.
type ProductStore struct {
	docs documentTable[productDocument]
}

func NewProductStore(db store.DBTX) *ProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &ProductStore{docs: documentTable[productDocument]{
		db:       db,
		table:    productsTable,
		entity:   "product",
		notFound: store.ErrProductNotFound,
	}}
}

var _ store.ProductStore = (*ProductStore)(nil)

func (s *ProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	recs, err := s.docs.list(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(recs))
	for _, rec := range recs {
		products = append(products, productFromRecord(rec))
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
	var body any
	if !patch.IsEmpty() {
		body = patch
	}
	rec, err := s.docs.merge(ctx, id, body)
	if err != nil {
		return nil, err
	}
	return productFromRecord(rec), nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	return s.docs.delete(ctx, id)
}
