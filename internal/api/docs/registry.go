package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Registry collects API operations as routes are mounted and renders them as
// a single OpenAPI document. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	info    openapi3.Info
	servers openapi3.Servers
	tags    openapi3.Tags
	order   []string
	paths   map[string]map[string]*openapi3.Operation
	schemas map[string]*openapi3.Schema
}

// NewRegistry creates an empty registry. serverURL is advertised as the
// document's only server; it may be empty.
func NewRegistry(info openapi3.Info, serverURL string) *Registry {
	r := &Registry{
		info:    info,
		paths:   make(map[string]map[string]*openapi3.Operation),
		schemas: make(map[string]*openapi3.Schema),
	}
	if serverURL != "" {
		r.servers = openapi3.Servers{&openapi3.Server{URL: serverURL}}
	}
	return r
}

// AddTag registers a tag. Adding a tag twice keeps the first description.
func (r *Registry) AddTag(tag openapi3.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tags.Get(tag.Name) != nil {
		return
	}
	r.tags = append(r.tags, &tag)
}

// AddSchema registers a named component schema.
func (r *Registry) AddSchema(name string, schema *openapi3.Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[name] = schema
}

// Add records op under path and method. It returns an error if the
// method is already documented for that path.
func (r *Registry) Add(method, path string, op *openapi3.Operation) error {
	if op == nil {
		return nil
	}
	method = strings.ToUpper(method)

	r.mu.Lock()
	defer r.mu.Unlock()

	ops, ok := r.paths[path]
	if !ok {
		ops = make(map[string]*openapi3.Operation)
		r.paths[path] = ops
		r.order = append(r.order, path)
	}
	if _, exists := ops[method]; exists {
		return fmt.Errorf("operation %s %s already registered", method, path)
	}
	ops[method] = op
	return nil
}

// Document returns a snapshot of the registered API. Operations and schemas
// are shared with the registry and must not be modified.
func (r *Registry) Document() *openapi3.T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info := r.info
	doc := &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info:    &info,
		Servers: append(openapi3.Servers(nil), r.servers...),
		Tags:    append(openapi3.Tags(nil), r.tags...),
		Paths:   openapi3.NewPaths(),
	}

	for _, path := range r.order {
		item := &openapi3.PathItem{}
		for method, op := range r.paths[path] {
			item.SetOperation(method, op)
		}
		doc.Paths.Set(path, item)
	}

	if len(r.schemas) > 0 {
		schemas := make(openapi3.Schemas, len(r.schemas))
		for name, s := range r.schemas {
			schemas[name] = &openapi3.SchemaRef{Value: s}
		}
		doc.Components = &openapi3.Components{Schemas: schemas}
	}
	return doc
}

// Validate checks the rendered document against the OpenAPI rules, with
// component references resolved the way a client would load them.
func (r *Registry) Validate(ctx context.Context) error {
	data, err := json.Marshal(r.Document())
	if err != nil {
		return fmt.Errorf("failed to render api document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("failed to load api document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid api document: %w", err)
	}
	return nil
}
