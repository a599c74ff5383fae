package conventional

import (
	"github.com/grovetools/semcommit/errors"
	"github.com/grovetools/semcommit/git"
	"github.com/grovetools/semcommit/util/pathutil"
)

// Entry is one classified status record.
type Entry struct {
	Status   git.Status `json:"status"`
	Category Category   `json:"category"`
}

// ChangeSet is the classification of every change going into one commit.
type ChangeSet struct {
	Entries []Entry `json:"entries"`

	// Category is shared by every entry, or Unclassified when they differ.
	Category Category `json:"category"`

	// CommonDir is the deepest directory containing every touched path.
	CommonDir string `json:"common_dir"`
}

// Summarize classifies each status by its destination path.
func (r Rules) Summarize(statuses []git.Status) ChangeSet {
	cs := ChangeSet{
		Entries: make([]Entry, 0, len(statuses)),
	}

	var paths []string
	for i, status := range statuses {
		category := r.Classify(status.To)
		cs.Entries = append(cs.Entries, Entry{Status: status, Category: category})
		paths = append(paths, status.Paths()...)

		if i == 0 {
			cs.Category = category
		} else if cs.Category != category {
			cs.Category = Unclassified
		}
	}

	cs.CommonDir = commonDir(paths)
	return cs
}

// Summarize classifies statuses with DefaultRules.
func Summarize(statuses []git.Status) ChangeSet {
	return DefaultRules().Summarize(statuses)
}

// commonDir is the common path of the parent directories, so a single changed
// file yields its directory rather than the file itself.
func commonDir(paths []string) string {
	dirs := make([]string, 0, len(paths))
	for _, p := range paths {
		split := pathutil.Split(p)
		if split.IsAtRepoRoot {
			return pathutil.RepoRoot
		}
		dirs = append(dirs, split.Dir)
	}
	return pathutil.CommonPath(dirs)
}

// Counts returns the number of entries per category.
func (cs ChangeSet) Counts() map[Category]int {
	counts := make(map[Category]int)
	for _, e := range cs.Entries {
		counts[e.Category]++
	}
	return counts
}

// Relative returns an entry's destination path relative to CommonDir.
func (cs ChangeSet) Relative(e Entry) string {
	if cs.CommonDir == pathutil.RepoRoot {
		return e.Status.To
	}
	rel := pathutil.RemoveBase(cs.CommonDir, e.Status.To)
	if len(rel) > 0 && rel[0] == '/' {
		rel = rel[1:]
	}
	return rel
}

// Check returns an ErrCodeTypeMismatch error when the commit type does not fit
// the shared category of the change set.
func (cs ChangeSet) Check(c *Commit) error {
	if cs.Category.Accepts(c.Type) {
		return nil
	}
	return errors.TypeMismatch(c.Type, string(cs.Category))
}
