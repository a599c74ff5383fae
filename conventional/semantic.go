// Package conventional classifies changed files into semantic commit categories.
//
// Classification is lexical: a path does not need to exist on disk. Callers can
// check whether every change in a commit is a chore, docs or test change and
// pick the matching conventional commit type.
package conventional

import (
	"slices"
	"strings"

	"github.com/grovetools/semcommit/util/pathutil"
)

// Category is a semantic commit category.
type Category string

const (
	Chore Category = "chore"
	Docs  Category = "docs"
	Test  Category = "test"

	// Unclassified means no heuristic matched.
	Unclassified Category = ""
)

// String returns the category name, or "unclassified" for the empty category.
func (c Category) String() string {
	if c == Unclassified {
		return "unclassified"
	}
	return string(c)
}

// Rules holds the lookup lists used by the classifier.
type Rules struct {
	// PackageFiles are exact file names of dependency manifests.
	PackageFiles []string `json:"package_files"`

	// ConfigExtensions are file extensions, without the leading dot, of configuration files.
	ConfigExtensions []string `json:"config_extensions"`

	// StrictDocs requires the first path segment to be "docs" instead of a raw
	// "docs" string prefix.
	StrictDocs bool `json:"strict_docs"`
}

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	return Rules{
		PackageFiles: []string{
			"dev-requirements.txt",
			"requirements.txt",
			"Gemfile",
			"Gemfile.lock",
			"package.json",
			"package-lock.json",
		},
		ConfigExtensions: []string{"yml", "yaml", "json"},
	}
}

// Merge returns a copy of r extended with extra package files and config
// extensions. Entries already present are not duplicated.
func (r Rules) Merge(packageFiles, configExtensions []string, strictDocs bool) Rules {
	merged := Rules{
		PackageFiles:     slices.Clone(r.PackageFiles),
		ConfigExtensions: slices.Clone(r.ConfigExtensions),
		StrictDocs:       r.StrictDocs || strictDocs,
	}

	for _, name := range packageFiles {
		if !slices.Contains(merged.PackageFiles, name) {
			merged.PackageFiles = append(merged.PackageFiles, name)
		}
	}
	for _, ext := range configExtensions {
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" && !slices.Contains(merged.ConfigExtensions, ext) {
			merged.ConfigExtensions = append(merged.ConfigExtensions, ext)
		}
	}

	return merged
}

// Semantic is the classification context for one path.
type Semantic struct {
	Filepath string `json:"filepath"`
	Dir      string `json:"dir"`
	Name     string `json:"name"`

	rules Rules
}

// NewSemantic builds a Semantic for path using DefaultRules.
func NewSemantic(path string) Semantic {
	return DefaultRules().Semantic(path)
}

// Semantic builds a Semantic for path using r.
func (r Rules) Semantic(path string) Semantic {
	split := pathutil.Split(path)
	return Semantic{
		Filepath: path,
		Dir:      split.Dir,
		Name:     split.Name,
		rules:    r,
	}
}

// IsDocRelated reports a README or anything under docs.
//
// For static sites not all .md files are docs, but everything in the docs
// directory is. Without StrictDocs this is a plain string prefix test, so
// "docsomething.txt" also matches.
func (s Semantic) IsDocRelated() bool {
	if s.Name == "README.md" {
		return true
	}
	if s.rules.StrictDocs {
		first, _, _ := strings.Cut(s.Filepath, "/")
		return first == "docs"
	}
	return strings.HasPrefix(s.Filepath, "docs")
}

// IsTestRelated reports test files and anything in a test directory.
func (s Semantic) IsTestRelated() bool {
	return strings.Contains(s.Name, ".test.") ||
		strings.Contains(s.Filepath, "test/") ||
		strings.HasPrefix(s.Name, "test_")
}

// IsConfigRelated reports files whose extension is a configured config extension.
func (s Semantic) IsConfigRelated() bool {
	ext := strings.TrimPrefix(pathutil.Split(s.Name).Extension, ".")
	if ext == "" {
		return false
	}
	return slices.Contains(s.rules.ConfigExtensions, ext)
}

// IsPackageRelated reports dependency manifests and lock files.
func (s Semantic) IsPackageRelated() bool {
	return slices.Contains(s.rules.PackageFiles, s.Name)
}

// Type returns the category of the path. Package and config files are always
// chores, even when they would also look like docs or tests.
func (s Semantic) Type() Category {
	switch {
	case s.IsPackageRelated() || s.IsConfigRelated():
		return Chore
	case s.IsDocRelated():
		return Docs
	case s.IsTestRelated():
		return Test
	default:
		return Unclassified
	}
}

// Classify returns the category of path using DefaultRules.
func Classify(path string) Category {
	return NewSemantic(path).Type()
}

// Classify returns the category of path using r.
func (r Rules) Classify(path string) Category {
	return r.Semantic(path).Type()
}
