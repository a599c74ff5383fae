package config

import (
	"fmt"
	"strings"

	"github.com/grovetools/semcommit/errors"
)

// Validate checks the semantic rules the schema cannot express.
func (c *Config) Validate() error {
	if c.Classify != nil {
		for _, name := range c.Classify.PackageFiles {
			if name == "" || strings.ContainsAny(name, `/\`) {
				return errors.New(errors.ErrCodeConfigValidation,
					fmt.Sprintf("classify.package_files: '%s' must be a plain file name", name)).
					WithDetail("value", name)
			}
		}
		for _, ext := range c.Classify.ConfigExtensions {
			trimmed := strings.TrimPrefix(ext, ".")
			if trimmed == "" || strings.ContainsAny(trimmed, `/\.`) {
				return errors.New(errors.ErrCodeConfigValidation,
					fmt.Sprintf("classify.config_extensions: '%s' must be a single extension such as 'toml'", ext)).
					WithDetail("value", ext)
			}
		}
	}

	if _, err := c.IgnoreMatcher(); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid ignore patterns")
	}

	return nil
}
