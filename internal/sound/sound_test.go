package sound

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestLocateTriesExtensionsInOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "timersound.mp3"))
	touch(t, filepath.Join(dir, "timersound.wav"))

	got, err := Locate("timersound", []string{dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "timersound.wav"), got)
}

func TestLocateSearchesDirsInOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	touch(t, filepath.Join(second, "timersound.mp3"))

	got, err := Locate("timersound", []string{first, second})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "timersound.mp3"), got)
}

func TestLocateExactName(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "chime.wav"))

	_, err := Locate("chime.mp3", []string{dir})
	assert.ErrorIs(t, err, ErrAssetNotFound)

	got, err := Locate("chime.wav", []string{dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chime.wav"), got)
}

func TestLocateAbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bell.wav")
	touch(t, path)

	got, err := Locate(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestLocateIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "timersound.wav"), 0o755))

	_, err := Locate("timersound", []string{dir})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestLocateMissing(t *testing.T) {
	_, err := Locate("timersound", []string{t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssetNotFound))
	assert.Contains(t, err.Error(), "timersound")

	_, err = Locate("  ", nil)
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestSearchDirsOrder(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	dirs := SearchDirs([]string{"", "/opt/sounds"})
	require.GreaterOrEqual(t, len(dirs), 2)
	assert.Equal(t, "/opt/sounds", dirs[0])
	assert.Equal(t, filepath.Join(data, "ringtimer", "sounds"), dirs[1])
}
