package docs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	reg := NewRegistry(openapi3.Info{Title: "Catalog API", Version: "1.0.0"}, "http://localhost:5000")
	reg.AddTag(openapi3.Tag{Name: "Users", Description: "API endpoints for managing users"})
	reg.AddSchema("User", Object(map[string]*openapi3.Schema{
		"id":   openapi3.NewStringSchema(),
		"name": WithExample(openapi3.NewStringSchema(), "John Doe"),
	}, "name"))
	require.NoError(t, reg.Add("GET", "/users", &openapi3.Operation{
		Summary:     "Get all users",
		OperationID: "listUsers",
		Tags:        []string{"Users"},
		Responses: Responses(map[int]*openapi3.ResponseRef{
			http.StatusOK: JSONResponse("A list of users", ArrayOf(Ref("User"))),
		}),
	}))
	require.NoError(t, reg.Add("DELETE", "/users/{id}", &openapi3.Operation{
		Summary:     "Delete a user",
		OperationID: "deleteUser",
		Parameters:  openapi3.Parameters{PathParameter("id", "User ID")},
		Responses: Responses(map[int]*openapi3.ResponseRef{
			http.StatusOK: JSONResponse("User deleted successfully", nil),
		}),
	}))
	return reg
}

func TestRegistryDocument(t *testing.T) {
	doc := newTestRegistry(t).Document()

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, "Catalog API", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "http://localhost:5000", doc.Servers[0].URL)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "Users", doc.Tags[0].Name)

	users := doc.Paths.Value("/users")
	require.NotNil(t, users)
	require.NotNil(t, users.Get)
	assert.Equal(t, "Get all users", users.Get.Summary)

	item := doc.Paths.Value("/users/{id}")
	require.NotNil(t, item)
	assert.NotNil(t, item.Delete)

	require.NotNil(t, doc.Components)
	assert.Contains(t, doc.Components.Schemas, "User")
}

func TestRegistryValidate(t *testing.T) {
	reg := newTestRegistry(t)

	assert.NoError(t, reg.Validate(context.Background()))
}

func TestRegistryValidateRejectsUndeclaredPathParameter(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.Add("PUT", "/users/{id}", &openapi3.Operation{
		Summary:     "Update a user",
		OperationID: "updateUser",
		Responses: Responses(map[int]*openapi3.ResponseRef{
			http.StatusOK: JSONResponse("User updated successfully", Ref("User")),
		}),
	}))

	assert.Error(t, reg.Validate(context.Background()))
}

func TestRegistryValidateRejectsUnknownSchemaRef(t *testing.T) {
	reg := NewRegistry(openapi3.Info{Title: "t", Version: "1"}, "")
	require.NoError(t, reg.Add("GET", "/things", &openapi3.Operation{
		Responses: Responses(map[int]*openapi3.ResponseRef{
			http.StatusOK: JSONResponse("things", Ref("Thing")),
		}),
	}))

	assert.Error(t, reg.Validate(context.Background()))
}

func TestRegistryRejectsDuplicateOperation(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.Add("get", "/users", &openapi3.Operation{Summary: "again"})

	assert.Error(t, err)
	assert.Equal(t, "Get all users", reg.Document().Paths.Value("/users").Get.Summary)
}

func TestRegistryIgnoresNilOperation(t *testing.T) {
	reg := NewRegistry(openapi3.Info{Title: "t", Version: "1"}, "")

	require.NoError(t, reg.Add("GET", "/health", nil))

	doc := reg.Document()
	assert.Zero(t, doc.Paths.Len())
	assert.Empty(t, doc.Servers)
	assert.Nil(t, doc.Components)
}

func TestRegistryAddTagKeepsFirst(t *testing.T) {
	reg := NewRegistry(openapi3.Info{}, "")
	reg.AddTag(openapi3.Tag{Name: "Users", Description: "first"})
	reg.AddTag(openapi3.Tag{Name: "Users", Description: "second"})

	tags := reg.Document().Tags
	require.Len(t, tags, 1)
	assert.Equal(t, "first", tags[0].Description)
}

func TestDocumentIsSnapshot(t *testing.T) {
	reg := newTestRegistry(t)
	doc := reg.Document()

	require.NoError(t, reg.Add("POST", "/users", &openapi3.Operation{Summary: "Create a new user"}))

	assert.Nil(t, doc.Paths.Value("/users").Post)
	assert.NotNil(t, reg.Document().Paths.Value("/users").Post)
}

func serve(t *testing.T, h *Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Mount("/api-docs", h.Routes())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandlerJSON(t *testing.T) {
	h := NewHandler(newTestRegistry(t), "/api-docs", nil)

	w := serve(t, h, "/api-docs/openapi.json")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "3.0.0", raw["openapi"])

	paths := raw["paths"].(map[string]interface{})
	get := paths["/users"].(map[string]interface{})["get"].(map[string]interface{})
	resp := get["responses"].(map[string]interface{})["200"].(map[string]interface{})
	schema := resp["content"].(map[string]interface{})["application/json"].(map[string]interface{})["schema"].(map[string]interface{})
	assert.Equal(t, "#/components/schemas/User", schema["items"].(map[string]interface{})["$ref"])
}

func TestHandlerYAML(t *testing.T) {
	h := NewHandler(newTestRegistry(t), "/api-docs", nil)

	w := serve(t, h, "/api-docs/openapi.yaml")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.0", doc["openapi"])
	info := doc["info"].(map[string]interface{})
	assert.Equal(t, "Catalog API", info["title"])
	paths := doc["paths"].(map[string]interface{})
	get := paths["/users"].(map[string]interface{})["get"].(map[string]interface{})
	assert.Equal(t, "Get all users", get["summary"])
}

func TestHandlerUI(t *testing.T) {
	h := NewHandler(newTestRegistry(t), "/api-docs", nil)

	for _, path := range []string{"/api-docs", "/api-docs/"} {
		t.Run(path, func(t *testing.T) {
			w := serve(t, h, path)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			body := w.Body.String()
			assert.Contains(t, body, "<title>Catalog API</title>")
			assert.Contains(t, body, "swagger-ui-bundle.js")
			assert.Contains(t, body, "openapi.json")
		})
	}
}
