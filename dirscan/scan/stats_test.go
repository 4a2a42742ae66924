package scan

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/dirscan/dirscan/common"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsFixtureFs(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/d/s/deep", 0o755))
	require.NoError(t, fsys.MkdirAll("/d/empty", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/d/a.txt", make([]byte, 10), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/d/s/b.txt", make([]byte, 20), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/d/s/deep/c.md", make([]byte, 5), 0o644))

	return fsys
}

func TestCollectStats(t *testing.T) {
	fsys := statsFixtureFs(t)

	stats, err := CollectStats(fsys, "/d")
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalFiles)
	assert.Equal(t, int64(3), stats.TotalDirs)
	assert.Equal(t, int64(35), stats.TotalSize)
	assert.Equal(t, 2, stats.MaxDepth)
	assert.Equal(t, int64(2), stats.FileTypes[".txt"])
	assert.Equal(t, int64(1), stats.FileTypes[".md"])
}

func TestCountEntries(t *testing.T) {
	fsys := statsFixtureFs(t)

	dirs, files, err := CountEntries(fsys, "/d")
	require.NoError(t, err)
	assert.Equal(t, int64(3), dirs)
	assert.Equal(t, int64(3), files)
}

func TestTreeSize(t *testing.T) {
	fsys := statsFixtureFs(t)

	size, err := TreeSize(fsys, "/d")
	require.NoError(t, err)
	assert.Equal(t, int64(35), size)
}

func TestSubdirs(t *testing.T) {
	fsys := statsFixtureFs(t)

	folders, err := Subdirs(fsys, "/d")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("/d", "empty"),
		filepath.Join("/d", "s"),
		filepath.Join("/d", "s", "deep"),
	}, folders)
}

func TestStatsSkipUnreadableSubdirectory(t *testing.T) {
	fsys := deniedFixtureFs(t)

	// The denied directory itself is still listed by its parent; only its
	// contents are unreachable.
	stats, err := CollectStats(fsys, "/d")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalDirs)
	assert.Equal(t, int64(2), stats.TotalFiles)
	assert.Equal(t, int64(2), stats.TotalSize)

	folders, err := Subdirs(fsys, "/d")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/d", "denied")}, folders)
}

func TestStatsRootErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/plain.txt", []byte("x"), 0o644))

	_, err := CollectStats(fsys, "/missing")
	assert.ErrorIs(t, err, common.ErrRootNotExist)

	_, _, err = CountEntries(fsys, "/missing")
	assert.Error(t, err)

	_, err = Subdirs(fsys, "/plain.txt")
	assert.ErrorIs(t, err, common.ErrNotDirectory)
}
