package git

import (
	"strconv"
	"strings"

	"github.com/grovetools/semcommit/errors"
)

// renameArrow separates the source and destination of a rename or copy.
const renameArrow = " -> "

// Status is one entry of `git status --short` output.
type Status struct {
	// X is the status code of the index (staged) slot. ' ' means unchanged.
	X byte `json:"x"`

	// Y is the status code of the working tree slot. ' ' means unchanged.
	Y byte `json:"y"`

	// To is the path of the file after the change.
	To string `json:"to"`

	// From is the original path for renames and copies, otherwise empty.
	From string `json:"from,omitempty"`
}

// IsRename reports whether the entry moved a file.
func (s Status) IsRename() bool {
	return s.From != ""
}

// IsStaged reports whether the index slot holds a change that would be committed.
func (s Status) IsStaged() bool {
	switch s.X {
	case ' ', '?', '!':
		return false
	}
	return true
}

// Paths returns every path touched by the entry, source first for renames.
func (s Status) Paths() []string {
	if s.IsRename() {
		return []string{s.From, s.To}
	}
	return []string{s.To}
}

// Code returns the two-letter status code, e.g. "A " or " M".
func (s Status) Code() string {
	return string([]byte{s.X, s.Y})
}

// ParseStatus parses a single status line of the form `XY PATH` or
// `XY FROM -> TO`. Malformed lines return an ErrCodeStatusParse error.
func ParseStatus(line string) (Status, error) {
	if len(line) < 3 {
		return Status{}, errors.StatusParse(line, "line shorter than 3 characters")
	}
	if line[2] != ' ' {
		return Status{}, errors.StatusParse(line, "status code must be followed by a space")
	}

	status := Status{X: line[0], Y: line[1]}
	payload := line[3:]
	if payload == "" {
		return Status{}, errors.StatusParse(line, "missing path")
	}

	source, rest := nextPath(payload)
	if rest == "" {
		status.To = source
		return status, nil
	}
	if source == "" || !strings.HasPrefix(rest, renameArrow) {
		return Status{}, errors.StatusParse(line, "rename must have exactly one source and one destination")
	}

	dest, tail := nextPath(rest[len(renameArrow):])
	if dest == "" || tail != "" {
		return Status{}, errors.StatusParse(line, "rename must have exactly one source and one destination")
	}
	status.From = source
	status.To = dest

	return status, nil
}

// ParseStatusOutput parses the full output of `git status --short`. Blank lines
// are skipped, so empty output yields no entries and no error. Parsing stops at
// the first malformed line.
func ParseStatusOutput(output string) ([]Status, error) {
	var statuses []Status

	for i, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		status, err := ParseStatus(line)
		if err != nil {
			if groveErr, ok := errors.As(err); ok {
				return nil, groveErr.WithDetail("lineNumber", i+1)
			}
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// nextPath reads one path from the start of s and returns it with the
// unconsumed remainder. A quoted path runs to its closing quote, so an arrow
// inside the quotes is part of the name. An unquoted path ends at the first
// rename arrow.
func nextPath(s string) (path, rest string) {
	if strings.HasPrefix(s, `"`) {
		if quoted, err := strconv.QuotedPrefix(s); err == nil {
			if unquoted, err := strconv.Unquote(quoted); err == nil {
				return unquoted, s[len(quoted):]
			}
		}
	}
	if i := strings.Index(s, renameArrow); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
