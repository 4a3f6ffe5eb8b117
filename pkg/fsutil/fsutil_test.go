package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameDevice(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))

	same, err := SameDevice(a, b)
	require.NoError(t, err)
	assert.True(t, same, "files in the same directory share a device")

	_, err = SameDevice(a, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestMountPoint(t *testing.T) {
	mount, err := MountPoint("/crazy/path")
	require.NoError(t, err)
	assert.Equal(t, "/", mount)

	mount, err = MountPoint("/")
	require.NoError(t, err)
	assert.Equal(t, "/", mount)
}

func TestExistingParent(t *testing.T) {
	dir := t.TempDir()

	parent, err := ExistingParent(filepath.Join(dir, "new", "deeply", "nested"))
	require.NoError(t, err)
	assert.Equal(t, dir, parent)

	parent, err = ExistingParent(filepath.Join(dir, "child"))
	require.NoError(t, err)
	assert.Equal(t, dir, parent)
}

func TestCreateTempDir(t *testing.T) {
	dir := t.TempDir()

	t.Run("default prefix", func(t *testing.T) {
		created, err := CreateTempDir(TempDirOptions{Folder: dir})
		require.NoError(t, err)
		assert.DirExists(t, created)
		assert.True(t, strings.HasPrefix(filepath.Base(created), DefaultTempDirPrefix))
	})

	t.Run("custom prefix", func(t *testing.T) {
		created, err := CreateTempDir(TempDirOptions{Folder: dir, Prefix: "session-"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filepath.Base(created), "session-"))
	})

	t.Run("no prefix", func(t *testing.T) {
		created, err := CreateTempDir(TempDirOptions{Folder: dir, ForceNoPrefix: true})
		require.NoError(t, err)
		assert.False(t, strings.HasPrefix(filepath.Base(created), DefaultTempDirPrefix))
	})

	t.Run("fixed name", func(t *testing.T) {
		created, err := CreateTempDir(TempDirOptions{Folder: dir, FixedName: "ingest"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ingest"), created)

		// Name collision picks the next numbered suffix.
		created, err = CreateTempDir(TempDirOptions{Folder: dir, FixedName: "ingest"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ingest_1"), created)
	})

	t.Run("nonexistent folder", func(t *testing.T) {
		_, err := CreateTempDir(TempDirOptions{Folder: filepath.Join(dir, "missing")})
		assert.Error(t, err)
	})
}

func TestCreateDownloadTempDirs(t *testing.T) {
	photos := t.TempDir()
	videos := t.TempDir()

	dirs, err := CreateDownloadTempDirs(photos, videos)
	require.NoError(t, err)
	assert.DirExists(t, dirs.PhotoTempDir)
	assert.DirExists(t, dirs.VideoTempDir)

	dirs, err = CreateDownloadTempDirs(photos, "")
	require.NoError(t, err)
	assert.DirExists(t, dirs.PhotoTempDir)
	assert.Empty(t, dirs.VideoTempDir)
}

func TestRandomFileName(t *testing.T) {
	name := RandomFileName("")
	assert.Len(t, name, 5)

	name = RandomFileName("jpg")
	assert.Len(t, name, 9)
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	for _, r := range RandomFileName("") {
		assert.Contains(t, fileNameCharacters, string(r))
	}
}
