package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/semcommit/command"
	"github.com/grovetools/semcommit/errors"
)

// CLIRepository implements the git providers using the git CLI
type CLIRepository struct {
	cmdBuilder *command.SafeBuilder
}

// Ensure it implements the interfaces
var (
	_ RepositoryProvider = (*CLIRepository)(nil)
	_ StatusProvider     = (*CLIRepository)(nil)
)

// NewCLIRepository creates a new CLI repository provider
func NewCLIRepository() *CLIRepository {
	return NewCLIRepositoryWithBuilder(command.NewSafeBuilder())
}

// NewCLIRepositoryWithBuilder creates a provider running git through builder
func NewCLIRepositoryWithBuilder(builder *command.SafeBuilder) *CLIRepository {
	return &CLIRepository{
		cmdBuilder: builder,
	}
}

// ShortStatus runs `git status --porcelain=v1` in dir and parses the result.
// The porcelain v1 format is the stable form of `git status --short`.
func (r *CLIRepository) ShortStatus(ctx context.Context, dir string, pathspecs ...string) ([]Status, error) {
	args := []string{"status", "--porcelain=v1", "--untracked-files=all"}
	if len(pathspecs) > 0 {
		args = append(args, "--")
		for _, spec := range pathspecs {
			if err := r.cmdBuilder.Validate("pathspec", spec); err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid pathspec").
					WithDetail("pathspec", spec)
			}
			args = append(args, spec)
		}
	}

	output, err := r.run(ctx, dir, args...)
	if err != nil {
		return nil, err
	}

	return ParseStatusOutput(output)
}

// IsGitRepo checks if a directory is inside a git work tree
func (r *CLIRepository) IsGitRepo(ctx context.Context, dir string) bool {
	_, err := r.run(ctx, dir, "rev-parse", "--git-dir")
	return err == nil
}

// GetGitRoot returns the root directory of the git repository
func (r *CLIRepository) GetGitRoot(ctx context.Context, dir string) (string, error) {
	output, err := r.run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// run executes git with args in dir and maps failures to structured errors
func (r *CLIRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	if err := r.cmdBuilder.Validate("dir", dir); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid working directory").
			WithDetail("dir", dir)
	}
	if err := r.cmdBuilder.LookPath("git"); err != nil {
		return "", errors.GitNotInstalled(err)
	}

	cmd, err := r.cmdBuilder.Build("git", args...)
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}

	stdout, stderr, err := cmd.InDir(dir).Output(ctx)
	if err != nil {
		stderrStr := string(stderr)
		if strings.Contains(stderrStr, "not a git repository") {
			return "", errors.NotARepository(dir)
		}
		return "", errors.CommandFailed(cmd.String(), err).
			WithDetail("output", strings.TrimSpace(stderrStr)).
			WithDetail("dir", dir)
	}

	return string(stdout), nil
}
