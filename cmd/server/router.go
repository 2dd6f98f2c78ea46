package main

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/catalog-api/internal/api"
	"github.com/phrazzld/catalog-api/internal/api/docs"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	apiMiddleware "github.com/phrazzld/catalog-api/internal/api/middleware"
)

// docsPath is where the API documentation is served.
const docsPath = "/api-docs"

// apiInfo describes the API in the generated documentation.
var apiInfo = openapi3.Info{
	Title:       "Catalog API",
	Version:     "1.0.0",
	Description: "API documentation for Users and Products",
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter(ctx context.Context) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger(app.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	registry := docs.NewRegistry(apiInfo, app.config.Server.PublicURL)

	userHandler := api.NewUserHandler(app.backend.Users(), app.logger)
	if err := api.Mount(r, api.UserRoutes(userHandler), registry); err != nil {
		return nil, err
	}

	productHandler := api.NewProductHandler(app.backend.Products(), app.logger)
	if err := api.Mount(r, api.ProductRoutes(productHandler), registry); err != nil {
		return nil, err
	}

	if err := registry.Validate(ctx); err != nil {
		return nil, err
	}
	r.Mount(docsPath, docs.NewHandler(registry, docsPath, app.logger).Routes())

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r, nil
}
