package api

import (
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/docs"
)

// Route binds a method and pattern to a handler and documents it.
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	Operation *openapi3.Operation
}

// Resource is the route table for one collection, mounted under Path.
type Resource struct {
	Path    string
	Tag     openapi3.Tag
	Schemas map[string]*openapi3.Schema
	Routes  []Route
}

// Mount attaches the resource's routes to r under res.Path and records
// their operations in reg. reg may be nil.
func Mount(r chi.Router, res Resource, reg *docs.Registry) error {
	r.Route(res.Path, func(sub chi.Router) {
		for _, rt := range res.Routes {
			sub.Method(rt.Method, rt.Pattern, rt.Handler)
		}
	})

	if reg == nil {
		return nil
	}

	reg.AddTag(res.Tag)
	for name, schema := range res.Schemas {
		reg.AddSchema(name, schema)
	}
	for _, rt := range res.Routes {
		if err := reg.Add(rt.Method, joinPath(res.Path, rt.Pattern), rt.Operation); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(base, pattern string) string {
	if pattern == "/" || pattern == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + pattern
}

// crudHandler is implemented by UserHandler and ProductHandler.
type crudHandler interface {
	List(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// crudDocs holds the wording that differs between collections.
type crudDocs struct {
	singular      string // "user"
	plural        string // "users"
	entity        string // component schema name, e.g. "User"
	properties    func() map[string]*openapi3.Schema
	required      []string
	createExample map[string]interface{}
	updateExample map[string]interface{}
}

func crudResource(h crudHandler, d crudDocs) Resource {
	title := strings.ToUpper(d.singular[:1]) + d.singular[1:]
	pluralTitle := strings.ToUpper(d.plural[:1]) + d.plural[1:]
	tag := pluralTitle

	newName := "New" + d.entity
	updateName := d.entity + "Update"

	stored := d.properties()
	id := openapi3.NewStringSchema()
	id.Description = title + " ID"
	stored["id"] = id

	errorResponse := func(description string) *openapi3.ResponseRef {
		return docs.JSONResponse(description, docs.Ref("Error"))
	}
	idParameter := openapi3.Parameters{docs.PathParameter(idParam, title+" ID")}

	return Resource{
		Path: "/" + d.plural,
		Tag:  openapi3.Tag{Name: tag, Description: "API endpoints for managing " + d.plural},
		Schemas: map[string]*openapi3.Schema{
			d.entity:         docs.Object(stored, append([]string{"id"}, d.required...)...),
			newName:          docs.Object(d.properties(), d.required...),
			updateName:       docs.Object(d.properties()),
			"Error":          errorSchema(),
			"DeleteResponse": deleteResponseSchema(),
		},
		Routes: []Route{
			{
				Method:  http.MethodGet,
				Pattern: "/",
				Handler: h.List,
				Operation: &openapi3.Operation{
					Summary:     "Get all " + d.plural,
					Description: "Fetch all " + d.plural + " from the database",
					OperationID: "list" + pluralTitle,
					Tags:        []string{tag},
					Responses: docs.Responses(map[int]*openapi3.ResponseRef{
						http.StatusOK: docs.JSONResponse(
							"List of "+d.plural+" retrieved successfully",
							docs.ArrayOf(docs.Ref(d.entity)),
						),
						http.StatusInternalServerError: errorResponse("Internal Server Error"),
					}),
				},
			},
			{
				Method:  http.MethodPost,
				Pattern: "/",
				Handler: h.Create,
				Operation: &openapi3.Operation{
					Summary:     "Create a new " + d.singular,
					Description: "Add a new " + d.singular + " to the database",
					OperationID: "create" + title,
					Tags:        []string{tag},
					RequestBody: docs.JSONRequestBody(docs.Ref(newName), d.createExample),
					Responses: docs.Responses(map[int]*openapi3.ResponseRef{
						http.StatusCreated:             docs.JSONResponse(title+" created successfully", docs.Ref(d.entity)),
						http.StatusBadRequest:          errorResponse("Bad Request"),
						http.StatusInternalServerError: errorResponse("Internal Server Error"),
					}),
				},
			},
			{
				Method:  http.MethodPut,
				Pattern: "/{" + idParam + "}",
				Handler: h.Update,
				Operation: &openapi3.Operation{
					Summary:     "Update a " + d.singular,
					Description: "Modify an existing " + d.singular + "'s details",
					OperationID: "update" + title,
					Tags:        []string{tag},
					Parameters:  idParameter,
					RequestBody: docs.JSONRequestBody(docs.Ref(updateName), d.updateExample),
					Responses: docs.Responses(map[int]*openapi3.ResponseRef{
						http.StatusOK:                  docs.JSONResponse(title+" updated successfully", docs.Ref(d.entity)),
						http.StatusBadRequest:          errorResponse("Bad Request"),
						http.StatusNotFound:            errorResponse(title + " not found"),
						http.StatusInternalServerError: errorResponse("Internal Server Error"),
					}),
				},
			},
			{
				Method:  http.MethodDelete,
				Pattern: "/{" + idParam + "}",
				Handler: h.Delete,
				Operation: &openapi3.Operation{
					Summary:     "Delete a " + d.singular,
					Description: "Remove a " + d.singular + " from the database",
					OperationID: "delete" + title,
					Tags:        []string{tag},
					Parameters:  idParameter,
					Responses: docs.Responses(map[int]*openapi3.ResponseRef{
						http.StatusOK:                  docs.JSONResponse(title+" deleted successfully", docs.Ref("DeleteResponse")),
						http.StatusNotFound:            errorResponse(title + " not found"),
						http.StatusInternalServerError: errorResponse("Internal Server Error"),
					}),
				},
			},
		},
	}
}

func errorSchema() *openapi3.Schema {
	return docs.Object(map[string]*openapi3.Schema{
		"error":    docs.WithExample(openapi3.NewStringSchema(), "Resource not found"),
		"trace_id": openapi3.NewStringSchema(),
	}, "error")
}

func deleteResponseSchema() *openapi3.Schema {
	return docs.Object(map[string]*openapi3.Schema{
		"message": openapi3.NewStringSchema(),
		"id":      openapi3.NewStringSchema(),
	}, "message", "id")
}

// UserRoutes returns the /users route table.
func UserRoutes(h *UserHandler) Resource {
	return crudResource(h, crudDocs{
		singular: "user",
		plural:   "users",
		entity:   "User",
		properties: func() map[string]*openapi3.Schema {
			return map[string]*openapi3.Schema{
				"name":  docs.WithExample(openapi3.NewStringSchema(), "John Doe"),
				"email": docs.WithExample(openapi3.NewStringSchema(), "johndoe@example.com"),
				"age":   docs.WithExample(openapi3.NewFloat64Schema(), 30),
			}
		},
		required: []string{"name", "email", "age"},
		createExample: map[string]interface{}{
			"name": "John Doe", "email": "johndoe@example.com", "age": 30,
		},
		updateExample: map[string]interface{}{
			"name": "Jane Doe", "email": "janedoe@example.com", "age": 28,
		},
	})
}

// ProductRoutes returns the /products route table.
func ProductRoutes(h *ProductHandler) Resource {
	return crudResource(h, crudDocs{
		singular: "product",
		plural:   "products",
		entity:   "Product",
		properties: func() map[string]*openapi3.Schema {
			return map[string]*openapi3.Schema{
				"name":        docs.WithExample(openapi3.NewStringSchema(), "Iced Tea Matcha"),
				"price":       docs.WithExample(openapi3.NewFloat64Schema(), 20),
				"description": docs.WithExample(openapi3.NewStringSchema(), "Tea with pistachio"),
			}
		},
		required: []string{"name", "price", "description"},
		createExample: map[string]interface{}{
			"name": "Iced Tea Matcha", "price": 20, "description": "Tea with pistachio",
		},
		updateExample: map[string]interface{}{
			"name": "Updated Tea Name", "price": 25, "description": "Updated description",
		},
	})
}
