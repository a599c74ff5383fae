package conventional

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/grovetools/semcommit/errors"
)

// Commit represents a parsed conventional commit message.
type Commit struct {
	Type       string
	Scope      string
	Subject    string
	Body       string
	IsBreaking bool
}

// Regex to parse a conventional commit message.
// It captures: 1: type, 2: scope (optional), 3: breaking change indicator (!), 4: subject
var commitRegex = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?(!?):\s(.*)$`)

// exemptPrefixes mark messages git or rebase tooling writes on its own.
var exemptPrefixes = []string{"Merge ", "Revert ", "fixup! ", "squash! ", "amend! "}

// StripComments removes the '#' comment lines git adds to the commit message
// template, along with surrounding blank lines.
func StripComments(message string) string {
	var kept []string
	scanner := bufio.NewScanner(strings.NewReader(message))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// IsExempt reports messages that are not expected to follow the convention,
// such as merge commits and autosquash markers.
func IsExempt(message string) bool {
	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(message, prefix) {
			return true
		}
	}
	return false
}

// Parse parses a raw git commit message string into a Commit struct.
func Parse(message string) (*Commit, error) {
	lines := strings.SplitN(strings.TrimSpace(message), "\n", 2)
	header := strings.TrimSpace(lines[0])

	matches := commitRegex.FindStringSubmatch(header)
	if len(matches) < 5 {
		return nil, errors.New(errors.ErrCodeCommitMessage, "invalid commit message format: "+header).
			WithDetail("header", header)
	}

	commit := &Commit{
		Type:       strings.ToLower(matches[1]),
		Scope:      matches[2],
		IsBreaking: matches[3] == "!",
		Subject:    matches[4],
	}

	if len(lines) > 1 {
		body := strings.TrimSpace(lines[1])
		if strings.Contains(body, "BREAKING CHANGE:") || strings.Contains(body, "BREAKING-CHANGE:") {
			commit.IsBreaking = true
		}
		commit.Body = body
	}

	return commit, nil
}

// Accepts reports whether a commit of the given type is compatible with the
// category. Unclassified changes accept any type.
func (c Category) Accepts(commitType string) bool {
	switch c {
	case Unclassified:
		return true
	case Chore:
		return commitType == "chore" || commitType == "build" || commitType == "ci"
	default:
		return commitType == string(c)
	}
}
