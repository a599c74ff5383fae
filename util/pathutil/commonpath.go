package pathutil

import (
	"path"
	"strings"
)

// RepoRoot is the human friendly name used in place of "." for paths at the
// top of the repository.
const RepoRoot = "repo root"

// SplitPath is lexical metadata about a single path. The file does not need to exist.
type SplitPath struct {
	IsAtRepoRoot bool   `json:"is_at_repo_root"`
	Dir          string `json:"dir"`
	Name         string `json:"name"`
	Extension    string `json:"extension"`
}

// CommonPath returns the longest directory prefix shared by every slash-separated path.
// This is useful for one file moving from source to destination, or for finding the
// top-most directory common to a set of changed files.
func CommonPath(paths []string) string {
	return CommonPathSep(paths, "/")
}

// CommonPathSep is CommonPath with a custom separator. It returns RepoRoot when the
// paths share no leading component.
func CommonPathSep(paths []string, sep string) string {
	if len(paths) == 0 {
		return RepoRoot
	}

	split := make([][]string, len(paths))
	shortest := -1
	for i, p := range paths {
		split[i] = strings.Split(p, sep)
		if shortest < 0 || len(split[i]) < shortest {
			shortest = len(split[i])
		}
	}

	var common []string
	for i := 0; i < shortest; i++ {
		component := split[0][i]
		if !allEqualAt(split, i, component) {
			break
		}
		common = append(common, component)
	}

	joined := strings.Join(common, sep)
	if joined == "" {
		return RepoRoot
	}
	return joined
}

func allEqualAt(split [][]string, i int, want string) bool {
	for _, components := range split {
		if components[i] != want {
			return false
		}
	}
	return true
}

// RemoveBase strips the first len(base) characters from p. The base is expected
// to be a prefix of p, typically from CommonPath; a following separator is kept.
// RepoRoot is not a prefix of anything, so callers must check for it first and
// use p unchanged.
func RemoveBase(base, p string) string {
	if len(base) >= len(p) {
		return ""
	}
	return p[len(base):]
}

// Split decomposes p into directory, name and extension.
func Split(p string) SplitPath {
	dir := path.Dir(p)
	atRoot := dir == "."
	if atRoot {
		dir = RepoRoot
	}

	return SplitPath{
		IsAtRepoRoot: atRoot,
		Dir:          dir,
		Name:         path.Base(p),
		Extension:    path.Ext(p),
	}
}
