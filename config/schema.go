package config

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

import (
	"encoding/json"

	"github.com/grovetools/semcommit/schema"
	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for .semcommit.yml from the Config
// struct. Extension sections such as logging are not described, so the root
// object allows additional properties while nested sections do not.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for a flat root.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	s := r.Reflect(&Config{})
	s.Title = "semcommit configuration"
	s.Description = "Rules for classifying changed files into semantic commit categories."
	s.AdditionalProperties = nil

	return json.MarshalIndent(s, "", "  ")
}

// NewSchemaValidator compiles the generated schema into a validator.
func NewSchemaValidator() (*schema.Validator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, err
	}
	return schema.NewValidator(data)
}
