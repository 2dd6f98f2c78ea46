package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped product not found", fmt.Errorf("update: %w", store.ErrProductNotFound), http.StatusNotFound},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"domain validation", domain.NewValidationError("name", "is required", domain.ErrMissingField), http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"malformed body", fmt.Errorf("%w: eof", shared.ErrMalformedBody), http.StatusBadRequest},
		{"unavailable", fmt.Errorf("%w: no url", store.ErrUnavailable), http.StatusInternalServerError},
		{"unknown error", errors.New("unknown error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"product not found", store.ErrProductNotFound, "Product not found"},
		{"generic not found", store.ErrNotFound, "Resource not found"},
		{
			"validation error inside invalid entity",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity,
				domain.NewValidationError("email", "is required", domain.ErrMissingField)),
			"email is required",
		},
		{
			"driver detail is hidden",
			fmt.Errorf("%w: document failed validation: write exception", store.ErrInvalidEntity),
			"Invalid entity data",
		},
		{"malformed body", shared.ErrMalformedBody, "Invalid request format"},
		{"unavailable", store.ErrUnavailable, "Document store unavailable"},
		{"unknown", errors.New("dial tcp 10.0.0.1:27017: i/o timeout"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMessage, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestHandleAPIErrorFallback(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		wantCode int
		wantMsg  string
	}{
		{"fallback replaces generic 500", errors.New("boom"), "Failed to create user", 500, "Failed to create user"},
		{"empty fallback keeps generic", errors.New("boom"), "", 500, "An unexpected error occurred"},
		{"fallback ignored for 404", store.ErrUserNotFound, "Failed to delete user", 404, "User not found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/users", nil)

			HandleAPIError(w, r, tc.err, tc.fallback)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantMsg, errorMessage(t, w))
		})
	}
}
