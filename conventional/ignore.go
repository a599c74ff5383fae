package conventional

import (
	"path/filepath"

	"github.com/grovetools/semcommit/errors"
	"github.com/grovetools/semcommit/git"
	"github.com/moby/patternmatcher"
)

// Ignore excludes paths matching .dockerignore-style patterns from classification.
// Patterns are anchored at the repository root; "vendor" also matches
// everything below vendor/, and a leading "!" re-includes a path.
type Ignore struct {
	matcher *patternmatcher.PatternMatcher
}

// NewIgnore compiles patterns. An empty list yields an Ignore matching nothing.
func NewIgnore(patterns []string) (*Ignore, error) {
	if len(patterns) == 0 {
		return &Ignore{}, nil
	}

	matcher, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid ignore pattern").
			WithDetail("patterns", patterns)
	}
	return &Ignore{matcher: matcher}, nil
}

// Match reports whether path, or one of its parent directories, is ignored.
func (i *Ignore) Match(path string) bool {
	if i == nil || i.matcher == nil {
		return false
	}
	matched, err := i.matcher.MatchesOrParentMatches(filepath.FromSlash(path))
	return err == nil && matched
}

// Filter returns the statuses that are not ignored. A rename is dropped only
// when its destination is ignored.
func (i *Ignore) Filter(statuses []git.Status) []git.Status {
	kept := make([]git.Status, 0, len(statuses))
	for _, s := range statuses {
		if !i.Match(s.To) {
			kept = append(kept, s)
		}
	}
	return kept
}
