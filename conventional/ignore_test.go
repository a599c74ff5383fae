package conventional

import (
	"testing"

	"github.com/grovetools/semcommit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnore(t *testing.T) {
	ignore, err := NewIgnore([]string{"vendor", "**/*.snap", "!vendor/keep.go"})
	require.NoError(t, err)

	assert.True(t, ignore.Match("vendor/lib/a.go"))
	assert.True(t, ignore.Match("web/__snapshots__/app.snap"))
	assert.False(t, ignore.Match("src/main.go"))

	statuses := mustParse(t, "M  vendor/lib/a.go", " M docs/intro.md", "R  vendor/x.go -> src/x.go")
	kept := ignore.Filter(statuses)
	require.Len(t, kept, 2)
	assert.Equal(t, "docs/intro.md", kept[0].To)
	assert.Equal(t, "src/x.go", kept[1].To)
}

func TestIgnoreEmpty(t *testing.T) {
	ignore, err := NewIgnore(nil)
	require.NoError(t, err)
	assert.False(t, ignore.Match("anything"))

	var nilIgnore *Ignore
	assert.False(t, nilIgnore.Match("anything"))
}

func TestIgnoreInvalidPattern(t *testing.T) {
	_, err := NewIgnore([]string{"["})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
}
