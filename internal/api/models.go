package api

import "github.com/phrazzld/catalog-api/internal/domain"

// CreateUserRequest defines the payload for POST /users.
// Age is a pointer so that an explicit 0 is accepted and an absent age is not.
type CreateUserRequest struct {
	Name  string   `json:"name"  validate:"required"`
	Email string   `json:"email" validate:"required"`
	Age   *float64 `json:"age"   validate:"required"`
}

// UpdateUserRequest defines the payload for PUT /users/{id}.
// Every field is optional; absent fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string  `json:"name"`
	Email *string  `json:"email"`
	Age   *float64 `json:"age"`
}

func (req UpdateUserRequest) patch() domain.UserPatch {
	return domain.UserPatch{Name: req.Name, Email: req.Email, Age: req.Age}
}

// UserResponse is the wire form of a user.
type UserResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Age   float64 `json:"age"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Age: u.Age}
}

// CreateProductRequest defines the payload for POST /products.
type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Price       *float64 `json:"price"       validate:"required"`
	Description string   `json:"description" validate:"required"`
}

// UpdateProductRequest defines the payload for PUT /products/{id}.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

func (req UpdateProductRequest) patch() domain.ProductPatch {
	return domain.ProductPatch{Name: req.Name, Price: req.Price, Description: req.Description}
}

// ProductResponse is the wire form of a product.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func productToResponse(p *domain.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Description: p.Description}
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
