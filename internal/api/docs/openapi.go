package docs

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIVersion is the version of the OpenAPI specification emitted.
const OpenAPIVersion = "3.0.0"

const componentSchemaPrefix = "#/components/schemas/"

// Ref returns a schema referencing a named component schema.
func Ref(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef(componentSchemaPrefix+name, nil)
}

// Object builds an object schema from its properties.
func Object(properties map[string]*openapi3.Schema, required ...string) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	for name, prop := range properties {
		s.WithProperty(name, prop)
	}
	if len(required) > 0 {
		s.Required = required
	}
	return s
}

// ArrayOf builds an array schema whose items are the given schema.
func ArrayOf(items *openapi3.SchemaRef) *openapi3.SchemaRef {
	s := openapi3.NewArraySchema()
	s.Items = items
	return &openapi3.SchemaRef{Value: s}
}

// WithExample sets the schema's example and returns it.
func WithExample(s *openapi3.Schema, example any) *openapi3.Schema {
	s.Example = example
	return s
}

// JSONContent wraps a schema and example as an application/json body.
func JSONContent(schema *openapi3.SchemaRef, example any) openapi3.Content {
	return openapi3.Content{
		"application/json": &openapi3.MediaType{Schema: schema, Example: example},
	}
}

// JSONResponse describes a response; schema may be nil for an empty body.
func JSONResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	resp := openapi3.NewResponse().WithDescription(description)
	if schema != nil {
		resp.Content = JSONContent(schema, nil)
	}
	return &openapi3.ResponseRef{Value: resp}
}

// JSONRequestBody describes a required JSON request body.
func JSONRequestBody(schema *openapi3.SchemaRef, example any) *openapi3.RequestBodyRef {
	body := openapi3.NewRequestBody().WithRequired(true).WithContent(JSONContent(schema, example))
	return &openapi3.RequestBodyRef{Value: body}
}

// PathParameter describes a required string path parameter.
func PathParameter(name, description string) *openapi3.ParameterRef {
	p := openapi3.NewPathParameter(name).
		WithDescription(description).
		WithSchema(openapi3.NewStringSchema())
	return &openapi3.ParameterRef{Value: p}
}

// Responses keys response descriptions by HTTP status code.
func Responses(byStatus map[int]*openapi3.ResponseRef) *openapi3.Responses {
	opts := make([]openapi3.NewResponsesOption, 0, len(byStatus))
	for status, ref := range byStatus {
		opts = append(opts, openapi3.WithStatus(status, ref))
	}
	return openapi3.NewResponses(opts...)
}
