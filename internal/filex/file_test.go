package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveFile_WritesContent(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "plot.png")

	require.NoError(t, SaveFile(path, []byte{0x89, 'P', 'N', 'G'}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, got)
}

func TestSaveFile_CreatesIntermediateDirs(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "c", "data.bin")

	require.NoError(t, SaveFile(path, []byte("payload")))

	fi, err := os.Stat(filepath.Join(tmp, "a", "b", "c"))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "payload", string(got))
}

func TestSaveFile_OverwritesExisting(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "out.txt")

	require.NoError(t, SaveFile(path, []byte("first")))
	require.NoError(t, SaveFile(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(got))
}

func TestSaveFile_FailsIfDirIsFile(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "blocked"), []byte("x"), 0o660))

	err := SaveFile(filepath.Join(tmp, "blocked", "data.bin"), []byte("x"))
	require.Error(t, err, "should fail when a file blocks the directory path")
}
