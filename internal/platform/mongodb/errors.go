package mongodb

import (
	"errors"
	"fmt"

	"github.com/phrazzld/catalog-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB server error codes
const (
	// namespaceExistsCode is returned by create when the collection already exists
	namespaceExistsCode = 48

	// documentValidationFailureCode is returned when a write violates the collection validator
	documentValidationFailureCode = 121
)

// MapError maps a driver error to the store's sentinel errors.
// notFound is the collection-specific not found error to use.
func MapError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", notFound, err)
	}

	if hasErrorCode(err, documentValidationFailureCode) {
		return fmt.Errorf("%w: document failed validation: %v", store.ErrInvalidEntity, err)
	}

	return err
}

func hasErrorCode(err error, code int) bool {
	var serverErr mongo.ServerError
	return errors.As(err, &serverErr) && serverErr.HasErrorCode(code)
}
