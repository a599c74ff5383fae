package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("home directory", func(t *testing.T) {
		got, err := Expand("~/logs/semcommit.log")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "logs", "semcommit.log"), got)
	})

	t.Run("environment variable", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("SEMCOMMIT_TEST_DIR", dir)
		got, err := Expand("$SEMCOMMIT_TEST_DIR/out.log")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "out.log"), got)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Expand("")
		assert.Error(t, err)
	})
}
