package logging

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the logging extension section.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		ExpandedStruct:             true,
		FieldNameTag:               "yaml",
		RequiredFromJSONSchemaTags: true,
	}

	s := r.Reflect(&Config{})
	s.Title = "semcommit logging configuration"
	s.Description = "Schema for the 'logging' section of .semcommit.yml."

	return json.MarshalIndent(s, "", "  ")
}
