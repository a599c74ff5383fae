package logging

import (
	"encoding/json"
	"testing"

	"github.com/grovetools/semcommit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotContains(t, doc, "required")

	validator, err := schema.NewValidator(data)
	require.NoError(t, err)

	assert.NoError(t, validator.Validate(map[string]interface{}{
		"level": "debug",
		"file":  map[string]interface{}{"enabled": true, "path": "~/semcommit.log"},
	}))
	assert.Error(t, validator.Validate(map[string]interface{}{"levle": "debug"}))
}
