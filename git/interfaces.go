package git

import "context"

// StatusProvider reports the changed files of a working tree
type StatusProvider interface {
	ShortStatus(ctx context.Context, dir string, pathspecs ...string) ([]Status, error)
}

// HookProvider defines the interface for git hook operations
type HookProvider interface {
	InstallHooks(ctx context.Context, repoPath string) error
	UninstallHooks(ctx context.Context, repoPath string) error
}

// RepositoryProvider defines the interface for general git repository operations
type RepositoryProvider interface {
	IsGitRepo(ctx context.Context, dir string) bool
	GetGitRoot(ctx context.Context, dir string) (string, error)
}
