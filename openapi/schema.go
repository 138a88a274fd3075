package openapi

import (
	"slices"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"

	"github.com/Gobd/formvalidation"
)

// Document builds an object schema describing every field configuration
// registered in reg. Each field becomes a string property annotated with the
// constraints its rules declare; required fields are listed in the schema's
// Required array.
func Document(reg *formvalidation.Registry) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, cfg := range reg.FieldConfigs() {
		ref := &openapi3.SchemaRef{Value: openapi3.NewStringSchema()}
		for _, rule := range cfg.Rules {
			rule.Describe(cfg.Name, schema, ref)
		}
		if cfg.Required && !slices.Contains(schema.Required, cfg.Name) {
			schema.Required = append(schema.Required, cfg.Name)
		}
		schema.Properties[cfg.Name] = ref
	}
	sort.Strings(schema.Required)
	schema.Required = slices.Compact(schema.Required)
	return schema
}

// MarshalDocument renders a schema as JSON.
func MarshalDocument(schema *openapi3.Schema) ([]byte, error) {
	return json.Marshal(schema)
}
