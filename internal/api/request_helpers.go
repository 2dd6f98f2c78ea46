package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// idParam is the path parameter naming a document.
const idParam = "id"

// getPathID extracts the document ID from the URL path. The ID is passed to
// the store as is; a value the backend cannot parse is reported as not found.
func getPathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, idParam)
	if id == "" {
		return "", domain.NewValidationError(idParam, "is required", domain.ErrMissingField)
	}
	return id, nil
}
