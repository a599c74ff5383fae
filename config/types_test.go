package config

import (
	"testing"

	"github.com/grovetools/semcommit/conventional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "1", cfg.Version)
	require.NotNil(t, cfg.Classify)
	assert.Equal(t, conventional.DefaultRules(), cfg.Rules())
}

func TestRules(t *testing.T) {
	cfg := &Config{
		Classify: &ClassifyConfig{
			PackageFiles:     []string{"Pipfile"},
			ConfigExtensions: []string{".ini"},
			StrictDocs:       true,
		},
	}

	rules := cfg.Rules()
	assert.Contains(t, rules.PackageFiles, "Pipfile")
	assert.Contains(t, rules.PackageFiles, "package.json")
	assert.Contains(t, rules.ConfigExtensions, "ini")
	assert.True(t, rules.StrictDocs)

	assert.Equal(t, conventional.Chore, rules.Classify("tools/Pipfile"))
	assert.Equal(t, conventional.Chore, rules.Classify("setup.ini"))
	assert.Equal(t, conventional.Unclassified, rules.Classify("docsite/index.html"))
}

func TestRulesNilConfig(t *testing.T) {
	var cfg *Config
	assert.Equal(t, conventional.DefaultRules(), cfg.Rules())

	ignore, err := cfg.IgnoreMatcher()
	require.NoError(t, err)
	assert.False(t, ignore.Match("anything"))
}

func TestIgnoreMatcher(t *testing.T) {
	cfg := &Config{Ignore: []string{"vendor", "*.gen.go"}}

	ignore, err := cfg.IgnoreMatcher()
	require.NoError(t, err)
	assert.True(t, ignore.Match("vendor/pkg/a.go"))
	assert.True(t, ignore.Match("api.gen.go"))
	assert.False(t, ignore.Match("main.go"))
}
