package domain

// Product is an item in the products collection.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// NewProduct creates a Product from its required fields.
func NewProduct(name string, price float64, description string) (*Product, error) {
	product := &Product{
		Name:        name,
		Price:       price,
		Description: description,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks that every required text field is present.
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", "is required", ErrMissingField)
	}
	if p.Description == "" {
		return NewValidationError("description", "is required", ErrMissingField)
	}
	return nil
}

// ProductPatch is a partial update of a Product. Nil fields are left unchanged.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
}

func (p ProductPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyField)
	}
	if p.Description != nil && *p.Description == "" {
		return NewValidationError("description", "cannot be empty", ErrEmptyField)
	}
	return nil
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Description == nil
}

func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
}
