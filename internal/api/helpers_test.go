package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/docs"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/platform/memory"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/stretchr/testify/require"
)

// mockUserStore is a function-field implementation of store.UserStore.
type mockUserStore struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	createFn func(ctx context.Context, user *domain.User) error
	updateFn func(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserStore) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockUserStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockProductStore is a function-field implementation of store.ProductStore.
type mockProductStore struct {
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	createFn func(ctx context.Context, product *domain.Product) error
	updateFn func(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	return m.listFn(ctx)
}

func (m *mockProductStore) Create(ctx context.Context, product *domain.Product) error {
	return m.createFn(ctx, product)
}

func (m *mockProductStore) Update(
	ctx context.Context,
	id string,
	patch domain.ProductPatch,
) (*domain.Product, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockProductStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// newTestRouter mounts both resources over the given stores.
func newTestRouter(t *testing.T, users store.UserStore, products store.ProductStore) (*chi.Mux, *docs.Registry) {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	reg := docs.NewRegistry(openapi3.Info{Title: "Catalog API", Version: "1.0.0"}, "")

	r := chi.NewRouter()
	require.NoError(t, Mount(r, UserRoutes(NewUserHandler(users, log)), reg))
	require.NoError(t, Mount(r, ProductRoutes(NewProductHandler(products, log)), reg))
	return r, reg
}

// newMemoryRouter mounts both resources over a fresh in-memory backend.
func newMemoryRouter(t *testing.T) *chi.Mux {
	t.Helper()

	backend := memory.NewBackend()
	r, _ := newTestRouter(t, backend.Users(), backend.Products())
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[shared.ErrorResponse](t, w).Error
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
