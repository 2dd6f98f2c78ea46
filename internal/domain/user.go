package domain

// User is a person record in the users collection.
// ID is assigned by the store when the user is created and never changes.
type User struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Age   float64 `json:"age"`
}

// NewUser creates a User from its required fields.
// The returned user has no ID until it is saved.
func NewUser(name, email string, age float64) (*User, error) {
	user := &User{
		Name:  name,
		Email: email,
		Age:   age,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that every required text field is present.
// Email format and uniqueness are not checked.
func (u *User) Validate() error {
	if u.Name == "" {
		return NewValidationError("name", "is required", ErrMissingField)
	}
	if u.Email == "" {
		return NewValidationError("email", "is required", ErrMissingField)
	}
	return nil
}

// UserPatch is a partial update of a User. Nil fields are left unchanged.
type UserPatch struct {
	Name  *string  `json:"name,omitempty"`
	Email *string  `json:"email,omitempty"`
	Age   *float64 `json:"age,omitempty"`
}

// Validate rejects patches that would blank out a required text field.
func (p UserPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyField)
	}
	if p.Email != nil && *p.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyField)
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Age == nil
}

// Apply copies the fields set in the patch onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
}
