// Package paths resolves the per-user directories used by semcommit.
//
// Resolution order:
// 1. SEMCOMMIT_HOME (portable root) → $SEMCOMMIT_HOME/config
// 2. XDG env vars → $XDG_CONFIG_HOME/semcommit
// 3. Platform defaults → ~/.config/semcommit
package paths

import (
	"os"
	"path/filepath"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("SEMCOMMIT_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// ConfigDir returns the semcommit configuration directory, or "" when no
// home directory can be determined.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	if os.Getenv("SEMCOMMIT_HOME") != "" {
		return base
	}
	return filepath.Join(base, "semcommit")
}

// GlobalConfigFile returns the path of the user-wide configuration file.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yml")
}
