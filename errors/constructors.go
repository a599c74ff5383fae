package errors

import (
	"fmt"
	"os/exec"
)

// StatusParse creates an error for a status line that cannot be parsed.
func StatusParse(line, reason string) *GroveError {
	return New(ErrCodeStatusParse, fmt.Sprintf("malformed status line %q: %s", line, reason)).
		WithDetail("line", line).
		WithDetail("reason", reason)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *GroveError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *GroveError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *GroveError {
	return New(ErrCodeInvalidInput, reason)
}

// GitNotInstalled reports that the git binary could not be found.
func GitNotInstalled(err error) *GroveError {
	return Wrap(err, ErrCodeGitNotInstalled, "git executable not found in PATH")
}

// NotARepository reports a directory outside any git work tree.
func NotARepository(dir string) *GroveError {
	return New(ErrCodeNotARepository, fmt.Sprintf("not a git repository: %s", dir)).
		WithDetail("dir", dir)
}

// TypeMismatch reports a commit type that disagrees with the classified changes.
func TypeMismatch(commitType, category string) *GroveError {
	return New(ErrCodeTypeMismatch,
		fmt.Sprintf("commit type '%s' does not match changes classified as '%s'", commitType, category)).
		WithDetail("commitType", commitType).
		WithDetail("category", category)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *GroveError {
	groveErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		groveErr = groveErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return groveErr
}
