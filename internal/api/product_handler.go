package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products store.ProductStore, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProductHandler")
	}

	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	products, err := h.products.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve products")
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, productToResponse(p))
	}

	log.Debug("listed products", slog.Int("count", len(resp)))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Create handles POST /products.
// Required fields are checked here, before the store is called.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	var req CreateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := domain.NewProduct(req.Name, *req.Price, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.products.Create(r.Context(), product); err != nil {
		HandleAPIError(w, r, err, "Failed to create product")
		return
	}

	log.Debug("product created", slog.String("product_id", product.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, productToResponse(product))
}

// Update handles PUT /products/{id}.
// Only the fields present in the body are changed.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	patch := req.patch()
	if err := shared.ValidateRequest(patch); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := h.products.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update product")
		return
	}

	log.Debug("product updated", slog.String("product_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete product")
		return
	}

	log.Debug("product deleted", slog.String("product_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Message: "Product deleted successfully",
		ID:      id,
	})
}

// requestLogger returns the request-scoped logger, falling back to the
// handler's own, tagged with this handler's component.
func (h *ProductHandler) requestLogger(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger).
		With(slog.String("component", "product_handler"))
}
