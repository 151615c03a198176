// Package openapi provides reflective OpenAPI 3.0 specification generation
// for the menu service.
package openapi

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/artpar/menud/internal/core/domain"
)

// =============================================================================
// Generator
// =============================================================================

// Generator produces the OpenAPI 3.0 specification for the menu API. The
// menu item schema is extracted by reflection from the domain model so the
// document cannot drift from the wire format.
type Generator struct {
	title       string
	version     string
	description string
	servers     []string
	mu          sync.RWMutex
	cachedSpec  *openapi3.T
	cachedYAML  []byte
}

// Option configures the generator.
type Option func(*Generator)

// WithTitle sets the API title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithVersion sets the API version.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// WithDescription sets the API description.
func WithDescription(description string) Option {
	return func(g *Generator) {
		g.description = description
	}
}

// WithServer adds a server URL.
func WithServer(url string) Option {
	return func(g *Generator) {
		g.servers = append(g.servers, url)
	}
}

// NewGenerator creates a new OpenAPI generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		title:       "Restaurant Menu API",
		version:     "1.0.0",
		description: "CRUD service for an in-memory restaurant menu",
		servers:     []string{"http://localhost:3000"},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate produces the complete OpenAPI 3.0 specification.
func (g *Generator) Generate() *openapi3.T {
	g.mu.RLock()
	if g.cachedSpec != nil {
		spec := g.cachedSpec
		g.mu.RUnlock()
		return spec
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	// Double-check after acquiring write lock
	if g.cachedSpec != nil {
		return g.cachedSpec
	}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.title,
			Version:     g.version,
			Description: g.description,
		},
		Servers: make(openapi3.Servers, 0, len(g.servers)),
		Paths:   &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}

	for _, url := range g.servers {
		spec.Servers = append(spec.Servers, &openapi3.Server{URL: url})
	}

	g.addSchemas(spec)
	g.addPaths(spec)

	g.cachedSpec = spec
	return spec
}

// Handler returns an HTTP handler that serves the specification as JSON.
func (g *Generator) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec := g.Generate()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(spec); err != nil {
			http.Error(w, "Failed to encode OpenAPI spec", http.StatusInternalServerError)
		}
	}
}

// YAML renders the specification as YAML, caching the result.
func (g *Generator) YAML() ([]byte, error) {
	g.mu.RLock()
	if g.cachedYAML != nil {
		out := g.cachedYAML
		g.mu.RUnlock()
		return out, nil
	}
	g.mu.RUnlock()

	data, err := json.Marshal(g.Generate())
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.cachedYAML = out
	g.mu.Unlock()
	return out, nil
}

// YAMLHandler returns an HTTP handler that serves the specification as YAML.
func (g *Generator) YAMLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := g.YAML()
		if err != nil {
			http.Error(w, "Failed to render OpenAPI spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(out)
	}
}

// DocsHandler returns an HTTP handler that serves a Swagger UI page reading
// the YAML specification endpoint.
func (g *Generator) DocsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>` + g.title + ` Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
		_, _ = w.Write([]byte(html))
	}
}

// =============================================================================
// Schema Generation
// =============================================================================

// addSchemas registers the component schemas for the menu API.
func (g *Generator) addSchemas(spec *openapi3.T) {
	item := g.extractSchema(domain.MenuItem{})
	refineItemSchema(item)
	spec.Components.Schemas["MenuItem"] = item

	// The write payload is the item without its id; the store assigns ids.
	input := g.extractSchema(domain.MenuItem{})
	refineItemSchema(input)
	delete(input.Value.Properties, "id")
	input.Value.Required = []string{"name", "description", "price", "category", "ingredients"}
	spec.Components.Schemas["MenuItemInput"] = input

	spec.Components.Schemas["Error"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"error": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
			},
			Required: []string{"error"},
		},
	}

	spec.Components.Schemas["ValidationError"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"error": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
				"messages": &openapi3.SchemaRef{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"array"},
						Items: &openapi3.SchemaRef{
							Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
						},
					},
				},
			},
			Required: []string{"error", "messages"},
		},
	}

	spec.Components.Schemas["DeleteConfirmation"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"message": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
				"item": &openapi3.SchemaRef{
					Ref: "#/components/schemas/MenuItem",
				},
			},
			Required: []string{"message", "item"},
		},
	}

	spec.Components.Schemas["Index"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"message": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
				"endpoints": &openapi3.SchemaRef{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"array"},
						Items: &openapi3.SchemaRef{
							Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
						},
					},
				},
			},
		},
	}

	spec.Components.Schemas["Health"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"status": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
			},
		},
	}
}

// refineItemSchema overlays the field constraints the validator enforces
// onto the reflected menu item schema.
func refineItemSchema(schema *openapi3.SchemaRef) {
	props := schema.Value.Properties

	if p, ok := props["name"]; ok {
		p.Value.MinLength = 3
	}
	if p, ok := props["description"]; ok {
		p.Value.MinLength = 10
	}
	if p, ok := props["price"]; ok {
		zero := 0.0
		p.Value.Min = &zero
		p.Value.ExclusiveMin = true
	}
	if p, ok := props["category"]; ok {
		enum := make([]interface{}, 0, len(domain.Categories()))
		for _, c := range domain.Categories() {
			enum = append(enum, string(c))
		}
		p.Value.Enum = enum
	}
	if p, ok := props["ingredients"]; ok {
		p.Value.MinItems = 1
	}
	if p, ok := props["available"]; ok {
		p.Value.Default = true
	}
}

// extractSchema extracts an OpenAPI schema from a Go struct.
func (g *Generator) extractSchema(model interface{}) *openapi3.SchemaRef {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	schema := &openapi3.Schema{
		Type:       &openapi3.Types{"object"},
		Properties: make(openapi3.Schemas),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		// Get JSON tag
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		// Parse JSON tag for name
		name := field.Name
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
		}

		// Convert Go type to OpenAPI type
		propSchema := g.goTypeToSchema(field.Type)
		if propSchema != nil {
			schema.Properties[name] = propSchema
		}
	}

	return &openapi3.SchemaRef{Value: schema}
}

// goTypeToSchema converts a Go type to an OpenAPI schema.
func (g *Generator) goTypeToSchema(t reflect.Type) *openapi3.SchemaRef {
	switch t.Kind() {
	case reflect.String:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}, Format: "int32"}}

	case reflect.Int64:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}, Format: "int64"}}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}}}

	case reflect.Float32:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"number"}, Format: "float"}}

	case reflect.Float64:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"number"}, Format: "double"}}

	case reflect.Bool:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"boolean"}}}

	case reflect.Slice, reflect.Array:
		elemSchema := g.goTypeToSchema(t.Elem())
		return &openapi3.SchemaRef{
			Value: &openapi3.Schema{
				Type:  &openapi3.Types{"array"},
				Items: elemSchema,
			},
		}

	case reflect.Map:
		valueSchema := g.goTypeToSchema(t.Elem())
		return &openapi3.SchemaRef{
			Value: &openapi3.Schema{
				Type:                 &openapi3.Types{"object"},
				AdditionalProperties: openapi3.AdditionalProperties{Schema: valueSchema},
			},
		}

	case reflect.Ptr:
		schema := g.goTypeToSchema(t.Elem())
		if schema != nil && schema.Value != nil {
			schema.Value.Nullable = true
		}
		return schema

	case reflect.Struct:
		// Handle time.Time specially
		if t == reflect.TypeOf(time.Time{}) {
			return &openapi3.SchemaRef{
				Value: &openapi3.Schema{Type: &openapi3.Types{"string"}, Format: "date-time"},
			}
		}
		// For other structs, extract recursively
		return g.extractSchema(reflect.New(t).Interface())

	default:
		// Unknown type, return generic object
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"object"}}}
	}
}

// =============================================================================
// Path Generation
// =============================================================================

// addPaths registers the fixed menu API routes.
func (g *Generator) addPaths(spec *openapi3.T) {
	spec.Paths.Set("/", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "getIndex",
			Summary:     "Describe the API",
			Tags:        []string{"Service"},
			Responses: responses(map[int]*openapi3.ResponseRef{
				200: jsonResponse("API description", "#/components/schemas/Index"),
			}),
		},
	})

	spec.Paths.Set("/health", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "getHealth",
			Summary:     "Health check",
			Tags:        []string{"Service"},
			Responses: responses(map[int]*openapi3.ResponseRef{
				200: jsonResponse("Service health", "#/components/schemas/Health"),
			}),
		},
	})

	itemList := &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: strptr("All menu items in insertion order"),
			Content: openapi3.Content{
				"application/json": &openapi3.MediaType{
					Schema: &openapi3.SchemaRef{
						Value: &openapi3.Schema{
							Type: &openapi3.Types{"array"},
							Items: &openapi3.SchemaRef{
								Ref: "#/components/schemas/MenuItem",
							},
						},
					},
				},
			},
		},
	}

	spec.Paths.Set("/api/menu", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "listMenuItems",
			Summary:     "List menu items",
			Tags:        []string{"Menu"},
			Responses: responses(map[int]*openapi3.ResponseRef{
				200: itemList,
			}),
		},
		Post: &openapi3.Operation{
			OperationID: "createMenuItem",
			Summary:     "Create a menu item",
			Tags:        []string{"Menu"},
			RequestBody: itemRequestBody(),
			Responses: responses(map[int]*openapi3.ResponseRef{
				201: jsonResponse("Created menu item", "#/components/schemas/MenuItem"),
				400: jsonResponse("Validation failure", "#/components/schemas/ValidationError"),
			}),
		},
	})

	spec.Paths.Set("/api/menu/{id}", &openapi3.PathItem{
		Parameters: openapi3.Parameters{
			&openapi3.ParameterRef{
				Value: &openapi3.Parameter{
					Name:     "id",
					In:       "path",
					Required: true,
					Schema: &openapi3.SchemaRef{
						Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}},
					},
				},
			},
		},
		Get: &openapi3.Operation{
			OperationID: "getMenuItem",
			Summary:     "Get a menu item",
			Tags:        []string{"Menu"},
			Responses: responses(map[int]*openapi3.ResponseRef{
				200: jsonResponse("Matching menu item", "#/components/schemas/MenuItem"),
				404: jsonResponse("No item with this id", "#/components/schemas/Error"),
			}),
		},
		Put: &openapi3.Operation{
			OperationID: "updateMenuItem",
			Summary:     "Replace a menu item",
			Tags:        []string{"Menu"},
			RequestBody: itemRequestBody(),
			Responses: responses(map[int]*openapi3.ResponseRef{
				200: jsonResponse("Updated menu item", "#/components/schemas/MenuItem"),
				400: jsonResponse("Validation failure", "#/components/schemas/ValidationError"),
				404: jsonResponse("No item with this id", "#/components/schemas/Error"),
			}),
		},
		Delete: &openapi3.Operation{
			OperationID: "deleteMenuItem",
			Summary:     "Delete a menu item",
			Tags:        []string{"Menu"},
			Responses: responses(map[int]*openapi3.ResponseRef{
				200: jsonResponse("Removed menu item", "#/components/schemas/DeleteConfirmation"),
				404: jsonResponse("No item with this id", "#/components/schemas/Error"),
			}),
		},
	})
}

// =============================================================================
// Helpers
// =============================================================================

func itemRequestBody() *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Required: true,
			Content: openapi3.Content{
				"application/json": &openapi3.MediaType{
					Schema: &openapi3.SchemaRef{
						Ref: "#/components/schemas/MenuItemInput",
					},
				},
			},
		},
	}
}

func jsonResponse(description, ref string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content: openapi3.Content{
				"application/json": &openapi3.MediaType{
					Schema: &openapi3.SchemaRef{Ref: ref},
				},
			},
		},
	}
}

func responses(byStatus map[int]*openapi3.ResponseRef) *openapi3.Responses {
	out := &openapi3.Responses{}
	for status, ref := range byStatus {
		out.Set(strconv.Itoa(status), ref)
	}
	return out
}

func strptr(s string) *string {
	return &s
}
