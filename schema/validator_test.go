package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "version": {"type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?$"},
    "ignore": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator([]byte(testSchema))
	require.NoError(t, err)

	type doc struct {
		Version string   `json:"version,omitempty"`
		Ignore  []string `json:"ignore,omitempty"`
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(doc{Version: "1", Ignore: []string{"vendor"}}))
	})

	t.Run("bad pattern", func(t *testing.T) {
		err := v.Validate(doc{Version: "one"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/version")
	})

	t.Run("unknown property", func(t *testing.T) {
		err := v.Validate(map[string]interface{}{"extra": true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}

func TestNewValidatorInvalidSchema(t *testing.T) {
	_, err := NewValidator([]byte(`{"type": 12}`))
	assert.Error(t, err)

	_, err = NewValidator([]byte(`not json`))
	assert.Error(t, err)
}
