package store

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// ProductStore defines the interface for the products collection.
// It mirrors UserStore; see there for the error contract.
type ProductStore interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)

	// Delete returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id string) error
}
