package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
	"gopkg.in/yaml.v3"
)

//go:embed swagger.html
var swaggerHTML string

var swaggerTemplate = template.Must(template.New("swagger").Parse(swaggerHTML))

// Handler serves the registry as an interactive page and as raw
// OpenAPI documents.
type Handler struct {
	registry *Registry
	basePath string
	logger   *slog.Logger
}

// NewHandler creates a Handler for documents mounted at basePath,
// e.g. "/api-docs".
func NewHandler(registry *Registry, basePath string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		registry: registry,
		basePath: basePath,
		logger:   logger.With(slog.String("component", "docs_handler")),
	}
}

// Routes returns a router serving the UI at "/" and the documents at
// "/openapi.json" and "/openapi.yaml".
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.UI)
	r.Get("/openapi.json", h.JSON)
	r.Get("/openapi.yaml", h.YAML)
	return r
}

// UI serves the Swagger UI page pointing at the JSON document.
func (h *Handler) UI(w http.ResponseWriter, r *http.Request) {
	doc := h.registry.Document()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := swaggerTemplate.Execute(w, struct {
		Title   string
		SpecURL string
	}{
		Title:   doc.Info.Title,
		SpecURL: h.basePath + "/openapi.json",
	})
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to render docs page", redact.Attr(err))
	}
}

// JSON serves the OpenAPI document as JSON.
func (h *Handler) JSON(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.registry.Document())
}

// YAML serves the OpenAPI document as YAML.
func (h *Handler) YAML(w http.ResponseWriter, r *http.Request) {
	out, err := renderYAML(h.registry.Document())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to render API documentation", err)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("failed to write docs response", redact.Attr(err))
	}
}

// renderYAML converts through the document's JSON form, since openapi3 types
// only carry JSON marshalers.
func renderYAML(doc any) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal api document: %w", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode api document: %w", err)
	}
	return yaml.Marshal(tree)
}
