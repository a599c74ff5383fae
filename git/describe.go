package git

// descriptions maps status codes to the words git uses for them.
var descriptions = map[byte]string{
	' ': "unmodified",
	'M': "modified",
	'T': "type changed",
	'A': "added",
	'D': "deleted",
	'R': "renamed",
	'C': "copied",
	'U': "updated but unmerged",
	'?': "untracked",
	'!': "ignored",
}

// Describe returns a human readable description of a single status code.
func Describe(code byte) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "unknown"
}

// Describe summarizes the entry, preferring the staged slot.
func (s Status) Describe() string {
	if s.X != ' ' {
		return Describe(s.X)
	}
	return Describe(s.Y)
}
