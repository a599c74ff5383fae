package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookManager_InstallHooks(t *testing.T) {
	tmpDir := t.TempDir()
	hooksDir := filepath.Join(tmpDir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))

	manager := NewHookManager("semcommit")

	err := manager.InstallHooks(context.Background(), tmpDir)
	require.NoError(t, err)

	hookPath := filepath.Join(hooksDir, "commit-msg")
	assert.FileExists(t, hookPath)

	info, err := os.Stat(hookPath)
	require.NoError(t, err)
	assert.True(t, info.Mode()&0100 != 0, "hook should be executable")

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), hookMarker)
	assert.Contains(t, string(content), `"$SEMCOMMIT_BIN" check --staged --file "$1"`)
}

func TestHookManager_DefaultBinary(t *testing.T) {
	assert.Equal(t, "semcommit", NewHookManager("").binary)
}

func TestHookManager_UninstallHooks(t *testing.T) {
	tmpDir := t.TempDir()
	hooksDir := filepath.Join(tmpDir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))

	manager := NewHookManager("semcommit")

	require.NoError(t, manager.InstallHooks(context.Background(), tmpDir))
	require.NoError(t, manager.UninstallHooks(context.Background(), tmpDir))

	assert.NoFileExists(t, filepath.Join(hooksDir, "commit-msg"))
}

func TestHookManager_PreserveExistingHooks(t *testing.T) {
	tmpDir := t.TempDir()
	hooksDir := filepath.Join(tmpDir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))

	existingHook := filepath.Join(hooksDir, "commit-msg")
	existingContent := "#!/bin/sh\necho 'existing hook'\n"
	require.NoError(t, os.WriteFile(existingHook, []byte(existingContent), 0755))

	manager := NewHookManager("semcommit")
	require.NoError(t, manager.InstallHooks(context.Background(), tmpDir))

	backupPath := existingHook + backupSuffix
	assert.FileExists(t, backupPath)

	backupContent, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, existingContent, string(backupContent))

	// Reinstalling must not overwrite the backup with our own hook
	require.NoError(t, manager.InstallHooks(context.Background(), tmpDir))
	backupContent, err = os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, existingContent, string(backupContent))

	require.NoError(t, manager.UninstallHooks(context.Background(), tmpDir))
	restored, err := os.ReadFile(existingHook)
	require.NoError(t, err)
	assert.Equal(t, existingContent, string(restored))
	assert.NoFileExists(t, backupPath)
}
