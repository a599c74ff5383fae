package config

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/grovetools/semcommit/errors"
	"github.com/grovetools/semcommit/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are the project configuration file names, in lookup order.
var configNames = []string{
	".semcommit.yml",
	".semcommit.yaml",
	"semcommit.yml",
	".semcommit.toml",
}

// Load reads and parses a configuration file. The format is chosen from the
// file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = LoadFromTOMLBytes(data)
	} else {
		cfg, err = LoadFromBytes(data)
	}
	if err != nil {
		if groveErr, ok := errors.As(err); ok {
			return nil, groveErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault finds and loads the configuration for the current directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, logrus.New())
}

// LoadFromWithLogger merges the global config (paths.GlobalConfigFile)
// with the nearest project config. At least one of them must exist.
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	var finalConfig *Config

	if globalPath := paths.GlobalConfigFile(); globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			globalConfig, err := Load(globalPath)
			if err != nil {
				return nil, err
			}
			finalConfig = globalConfig
		}
	}

	projectPath, err := FindConfigFile(startDir)
	if err == nil {
		logger.WithField("path", projectPath).Debug("Loading project configuration")
		projectConfig, err := Load(projectPath)
		if err != nil {
			return nil, err
		}
		finalConfig = mergeConfigs(finalConfig, projectConfig)
	} else if !errors.Is(err, errors.ErrCodeConfigNotFound) || finalConfig == nil {
		return nil, err
	}

	finalConfig.SetDefaults()
	return finalConfig, nil
}

// LoadOrDefault is LoadFromWithLogger, falling back to Default when no
// configuration file exists.
func LoadOrDefault(startDir string, logger *logrus.Logger) (*Config, error) {
	cfg, err := LoadFromWithLogger(startDir, logger)
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		logger.WithField("dir", startDir).Debug("No configuration found, using defaults")
		return Default(), nil
	}
	return cfg, err
}

// LoadFromBytes parses YAML configuration from a byte array
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}

	return finalize(&config)
}

// LoadFromTOMLBytes parses TOML configuration from a byte array
func LoadFromTOMLBytes(data []byte) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var config Config
	if err := toml.Unmarshal(expanded, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
	}

	// TOML has no inline maps, so collect the extension sections separately.
	var raw map[string]interface{}
	if err := toml.Unmarshal(expanded, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
	}
	for key, value := range raw {
		if slices.Contains(knownKeys, key) {
			continue
		}
		if config.Extensions == nil {
			config.Extensions = make(map[string]interface{})
		}
		config.Extensions[key] = value
	}

	return finalize(&config)
}

// finalize validates a freshly decoded configuration and applies defaults.
func finalize(config *Config) (*Config, error) {
	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create validator")
	}

	if err := validator.Validate(config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.SetDefaults()
	return config, nil
}

// FindConfigFile searches for a project configuration file from startDir up
// to the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
