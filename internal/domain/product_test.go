package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("Iced Tea Matcha", 20, "Tea with pistachio")
	require.NoError(t, err)
	assert.Equal(t, "Iced Tea Matcha", product.Name)
	assert.Equal(t, float64(20), product.Price)
	assert.Equal(t, "Tea with pistachio", product.Description)

	_, err = NewProduct("Iced Tea Matcha", 20, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Equal(t, "description is required", err.Error())

	_, err = NewProduct("", 20, "Tea")
	assert.Equal(t, "name is required", err.Error())
}

func TestProductPatch(t *testing.T) {
	product := Product{ID: "p1", Name: "Tea", Price: 20, Description: "Green"}

	patch := ProductPatch{Price: floatPtr(25)}
	require.NoError(t, patch.Validate())
	patch.Apply(&product)
	assert.Equal(t, Product{ID: "p1", Name: "Tea", Price: 25, Description: "Green"}, product)

	// A zero price is a legitimate change, not an omission
	zero := ProductPatch{Price: floatPtr(0)}
	assert.False(t, zero.IsEmpty())
	zero.Apply(&product)
	assert.Equal(t, float64(0), product.Price)

	err := ProductPatch{Name: strPtr("")}.Validate()
	assert.True(t, errors.Is(err, ErrEmptyField))
}
