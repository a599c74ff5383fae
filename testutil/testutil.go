package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireGit skips the test if git is not available
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// InitGitRepo initializes a git repository with a committer identity in dir
func InitGitRepo(t *testing.T, dir string) {
	t.Helper()

	RunGitCommand(t, dir, "init", "--quiet")
	RunGitCommand(t, dir, "config", "user.email", "test@example.com")
	RunGitCommand(t, dir, "config", "user.name", "Test User")
	RunGitCommand(t, dir, "config", "commit.gpgsign", "false")
}

// NewGitRepo creates a temporary repository with one initial commit and returns its path
func NewGitRepo(t *testing.T) string {
	t.Helper()
	RequireGit(t)

	dir := t.TempDir()
	InitGitRepo(t, dir)
	CreateCommit(t, dir, "README.md", "# test\n")
	return dir
}

// RunGitCommand runs a git command in dir and fails the test on error
func RunGitCommand(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed with output: %s", strings.Join(args, " "), string(output))
}

// WriteFile writes content to dir/name, creating parent directories
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// CreateCommit writes a file and commits it
func CreateCommit(t *testing.T, dir, filename, content string) {
	t.Helper()

	WriteFile(t, dir, filename, content)
	RunGitCommand(t, dir, "add", filename)
	RunGitCommand(t, dir, "commit", "--quiet", "-m", "Add "+filename)
}
