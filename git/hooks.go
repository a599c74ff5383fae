package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// hookMarker identifies hook files written by HookManager.
const hookMarker = "semcommit git hook"

const commitMsgHookTemplate = `#!/bin/sh
# {{.Marker}} - {{.HookName}}
# Auto-generated, do not edit directly

SEMCOMMIT_BIN="{{.Binary}}"

if ! command -v "$SEMCOMMIT_BIN" >/dev/null 2>&1; then
    echo "semcommit not found. Skipping {{.HookName}} hook."
    exit 0
fi

"$SEMCOMMIT_BIN" check --staged --file "$1"
`

// backupSuffix is appended to foreign hooks replaced on install.
const backupSuffix = ".pre-semcommit"

// HookManager installs the commit-msg hook that checks commit types
type HookManager struct {
	binary string
}

// Ensure it implements the interface
var _ HookProvider = (*HookManager)(nil)

// NewHookManager creates a new hook manager
func NewHookManager(binary string) *HookManager {
	if binary == "" {
		binary = "semcommit"
	}
	return &HookManager{
		binary: binary,
	}
}

// managedHooks lists the hooks written by InstallHooks
func managedHooks() map[string]string {
	return map[string]string{
		"commit-msg": commitMsgHookTemplate,
	}
}

// InstallHooks installs the hooks into repoPath/.git/hooks
func (m *HookManager) InstallHooks(ctx context.Context, repoPath string) error {
	hooksDir := filepath.Join(repoPath, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	for hookName, templateContent := range managedHooks() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.installHook(hooksDir, hookName, templateContent); err != nil {
			return fmt.Errorf("install %s hook: %w", hookName, err)
		}
	}

	return nil
}

// UninstallHooks removes managed hooks and restores any hook they replaced
func (m *HookManager) UninstallHooks(ctx context.Context, repoPath string) error {
	hooksDir := filepath.Join(repoPath, ".git", "hooks")

	for hookName := range managedHooks() {
		if err := ctx.Err(); err != nil {
			return err
		}
		hookPath := filepath.Join(hooksDir, hookName)

		if !m.isManagedHook(hookPath) {
			continue
		}
		if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s hook: %w", hookName, err)
		}

		backupPath := hookPath + backupSuffix
		if _, err := os.Stat(backupPath); err == nil {
			if err := os.Rename(backupPath, hookPath); err != nil {
				return fmt.Errorf("restore %s hook: %w", hookName, err)
			}
		}
	}

	return nil
}

// installHook installs a single git hook
func (m *HookManager) installHook(hooksDir, hookName, templateContent string) error {
	hookPath := filepath.Join(hooksDir, hookName)

	if _, err := os.Stat(hookPath); err == nil && !m.isManagedHook(hookPath) {
		if err := os.Rename(hookPath, hookPath+backupSuffix); err != nil {
			return fmt.Errorf("backup existing hook: %w", err)
		}
	}

	tmpl, err := template.New(hookName).Parse(templateContent)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Marker   string
		HookName string
		Binary   string
	}{
		Marker:   hookMarker,
		HookName: hookName,
		Binary:   m.binary,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	// #nosec G306 - Git hooks need to be executable
	if err := os.WriteFile(hookPath, buf.Bytes(), 0755); err != nil {
		return fmt.Errorf("write hook file: %w", err)
	}

	return nil
}

// isManagedHook checks if a hook file was written by HookManager
func (m *HookManager) isManagedHook(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte(hookMarker))
}
