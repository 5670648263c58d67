package seventimer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Product payload schemas. The upstream API does not publish a formal
// schema; these capture the shared envelope plus the per-product
// dataseries record shape, loosely enough to survive additive server
// changes (additional properties are allowed everywhere).
const schemaEnvelope = `{
	"type": "object",
	"required": ["product", "init", "dataseries"],
	"properties": {
		"product": {"type": "string"},
		"init": {"type": "string", "pattern": "^[0-9]{10}$"},
		"dataseries": {"type": "array", "items": %s}
	}
}`

var productItemSchemas = map[Product]string{
	ProductAstro: `{
		"type": "object",
		"required": ["timepoint", "cloudcover", "seeing", "transparency"],
		"properties": {
			"timepoint": {"type": "integer"},
			"cloudcover": {"type": "integer"},
			"seeing": {"type": "integer"},
			"transparency": {"type": "integer"},
			"temp2m": {"type": "integer"},
			"prec_type": {"type": "string"}
		}
	}`,
	ProductCivil: `{
		"type": "object",
		"required": ["timepoint", "cloudcover", "temp2m", "weather"],
		"properties": {
			"timepoint": {"type": "integer"},
			"cloudcover": {"type": "integer"},
			"temp2m": {"type": "integer"},
			"weather": {"type": "string"},
			"prec_type": {"type": "string"}
		}
	}`,
	ProductCivilLight: `{
		"type": "object",
		"required": ["date", "weather", "temp2m"],
		"properties": {
			"date": {"type": "integer"},
			"weather": {"type": "string"},
			"temp2m": {
				"type": "object",
				"required": ["max", "min"],
				"properties": {
					"max": {"type": "integer"},
					"min": {"type": "integer"}
				}
			}
		}
	}`,
	ProductMeteo: `{
		"type": "object",
		"required": ["timepoint", "cloudcover", "temp2m"],
		"properties": {
			"timepoint": {"type": "integer"},
			"cloudcover": {"type": "integer"},
			"temp2m": {"type": "integer"},
			"msl_pressure": {"type": "integer"}
		}
	}`,
	ProductTwo: `{
		"type": "object",
		"required": ["date", "weather"],
		"properties": {
			"date": {"type": "integer"},
			"weather": {"type": "string"}
		}
	}`,
}

// ValidateBody checks a JSON response body against the embedded schema
// for the given product. It returns nil when the body conforms, a
// descriptive error listing the violations otherwise, and an error for
// bodies that are not JSON at all.
func ValidateBody(product Product, body []byte) error {
	itemSchema, ok := productItemSchemas[product]
	if !ok {
		return &ValidationError{Field: "product", Message: fmt.Sprintf("unknown product %q", product)}
	}

	compiler := jsonschema.NewCompiler()
	schemaStr := fmt.Sprintf(schemaEnvelope, itemSchema)
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%s payload does not match schema: %w", product, err)
	}
	return nil
}
