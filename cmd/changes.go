package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/grovetools/semcommit/cli"
	"github.com/grovetools/semcommit/config"
	"github.com/grovetools/semcommit/conventional"
	"github.com/grovetools/semcommit/errors"
	"github.com/grovetools/semcommit/git"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// statusProvider reads the working tree status. Tests replace it.
var statusProvider git.StatusProvider = git.NewCLIRepository()

// changeOptions selects where status lines come from.
type changeOptions struct {
	Dir       string
	Stdin     bool
	AutoStdin bool
	Staged    bool
	Pathspecs []string
}

// resolveDir returns dir as an absolute path, defaulting to the current directory.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid directory").WithDetail("dir", dir)
	}
	return abs, nil
}

// collectChanges reads status entries, drops ignored and (optionally) unstaged
// ones and classifies the rest with the configured rules.
func collectChanges(cmd *cobra.Command, cfg *config.Config, opts changeOptions) (conventional.ChangeSet, error) {
	logger := cli.GetLogger(cmd)

	var statuses []git.Status
	if opts.Stdin || (opts.AutoStdin && stdinIsPipe(cmd.InOrStdin())) {
		if len(opts.Pathspecs) > 0 {
			return conventional.ChangeSet{}, errors.InvalidInput("pathspecs cannot be combined with status input on stdin")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return conventional.ChangeSet{}, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read status from stdin")
		}
		statuses, err = git.ParseStatusOutput(string(data))
		if err != nil {
			return conventional.ChangeSet{}, err
		}
		logger.WithField("entries", len(statuses)).Debug("Read status from stdin")
	} else {
		dir, err := resolveDir(opts.Dir)
		if err != nil {
			return conventional.ChangeSet{}, err
		}
		statuses, err = statusProvider.ShortStatus(cmd.Context(), dir, opts.Pathspecs...)
		if err != nil {
			return conventional.ChangeSet{}, err
		}
		logger.WithFields(map[string]interface{}{
			"dir":     dir,
			"entries": len(statuses),
		}).Debug("Read status from git")
	}

	if opts.Staged {
		staged := statuses[:0]
		for _, s := range statuses {
			if s.IsStaged() {
				staged = append(staged, s)
			}
		}
		statuses = staged
	}

	ignore, err := cfg.IgnoreMatcher()
	if err != nil {
		return conventional.ChangeSet{}, err
	}
	kept := ignore.Filter(statuses)
	if dropped := len(statuses) - len(kept); dropped > 0 {
		logger.WithField("ignored", dropped).Debug("Dropped ignored paths")
	}

	return cfg.Rules().Summarize(kept), nil
}

// stdinIsPipe reports whether r is a pipe or file rather than a terminal.
func stdinIsPipe(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	if term.IsTerminal(int(f.Fd())) {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeNamedPipe != 0 || info.Mode().IsRegular()
}
