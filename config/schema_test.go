package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "semcommit configuration", doc["title"])
	assert.NotContains(t, doc, "additionalProperties")

	properties, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, properties, "version")
	assert.Contains(t, properties, "classify")
	assert.Contains(t, properties, "ignore")
	assert.NotContains(t, properties, "Extensions")
}

func TestSchemaValidator(t *testing.T) {
	validator, err := NewSchemaValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:   "empty config",
			config: &Config{},
		},
		{
			name: "full config",
			config: &Config{
				Version: "1.2",
				Classify: &ClassifyConfig{
					PackageFiles:     []string{"deps.lock"},
					ConfigExtensions: []string{"ini"},
					StrictDocs:       true,
				},
				Ignore:     []string{"vendor/"},
				Extensions: map[string]interface{}{"logging": map[string]interface{}{"level": "debug"}},
			},
		},
		{
			name:    "version pattern",
			config:  &Config{Version: "v1"},
			wantErr: true,
		},
		{
			name:    "duplicate extensions",
			config:  &Config{Classify: &ClassifyConfig{ConfigExtensions: []string{"ini", "ini"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
