package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDataDir(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dir, err := EnsureDataDir("data")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "data"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Idempotent.
	again, err := EnsureDataDir("data")
	require.NoError(t, err)
	require.Equal(t, dir, again)
}
