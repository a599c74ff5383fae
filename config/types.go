package config

import (
	"fmt"

	"github.com/grovetools/semcommit/conventional"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ClassifyConfig extends the built-in classification rules.
type ClassifyConfig struct {
	PackageFiles     []string `yaml:"package_files,omitempty" toml:"package_files,omitempty" json:"package_files,omitempty" jsonschema:"description=Extra dependency manifest file names classified as chore,uniqueItems=true"`
	ConfigExtensions []string `yaml:"config_extensions,omitempty" toml:"config_extensions,omitempty" json:"config_extensions,omitempty" jsonschema:"description=Extra file extensions (without dot) classified as chore,uniqueItems=true"`
	StrictDocs       bool     `yaml:"strict_docs,omitempty" toml:"strict_docs,omitempty" json:"strict_docs,omitempty" jsonschema:"description=Only treat paths whose first segment is docs as documentation"`
}

// Config is the contents of a .semcommit.yml file.
type Config struct {
	Version  string          `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Configuration version (e.g. 1),pattern=^[0-9]+(\\.[0-9]+)?$"`
	Classify *ClassifyConfig `yaml:"classify,omitempty" toml:"classify,omitempty" json:"classify,omitempty" jsonschema:"description=Classification rule extensions"`
	Ignore   []string        `yaml:"ignore,omitempty" toml:"ignore,omitempty" json:"ignore,omitempty" jsonschema:"description=Patterns of paths excluded from classification (dockerignore syntax)"`

	// Extensions captures all other top-level keys, such as logging.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// knownKeys are the top-level keys decoded into Config fields.
var knownKeys = []string{"version", "classify", "ignore"}

// UnmarshalYAML decodes the known fields and keeps the remaining keys as extensions.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig struct {
		Version    string                 `yaml:"version,omitempty"`
		Classify   *ClassifyConfig        `yaml:"classify,omitempty"`
		Ignore     []string               `yaml:"ignore,omitempty"`
		Extensions map[string]interface{} `yaml:",inline"`
	}

	var raw rawConfig
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.Version = raw.Version
	c.Classify = raw.Classify
	c.Ignore = raw.Ignore
	c.Extensions = raw.Extensions

	return nil
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Classify == nil {
		c.Classify = &ClassifyConfig{}
	}
}

// Rules returns the classifier rules: the built-in defaults extended by the
// classify section.
func (c *Config) Rules() conventional.Rules {
	rules := conventional.DefaultRules()
	if c == nil || c.Classify == nil {
		return rules
	}
	return rules.Merge(c.Classify.PackageFiles, c.Classify.ConfigExtensions, c.Classify.StrictDocs)
}

// IgnoreMatcher compiles the ignore patterns.
func (c *Config) IgnoreMatcher() (*conventional.Ignore, error) {
	if c == nil {
		return conventional.NewIgnore(nil)
	}
	return conventional.NewIgnore(c.Ignore)
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded .semcommit.yml into the provided target struct. The target must be a pointer.
// It is not an error if the key does not exist; the target stays zero-valued.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	// Use `yaml` tags so extension structs need only one set of tags.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
