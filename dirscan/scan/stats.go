package scan

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/dirscan/dirscan/common"

	"github.com/spf13/afero"
)

// TreeStats summarizes a directory tree: counts, total size, depth, and a
// per-extension histogram. The root itself is not counted as a directory.
type TreeStats struct {
	Path       string
	TotalFiles int64
	TotalDirs  int64
	TotalSize  int64
	MaxDepth   int
	FileTypes  map[string]int64 // extension -> count
}

// CollectStats walks the tree rooted at root and aggregates TreeStats.
// Unreadable subtrees are skipped with a warning, same policy as Scan.
func CollectStats(fsys afero.Fs, root string) (*TreeStats, error) {
	if err := common.NewValidationUtils().ValidateScanRoot(fsys, root); err != nil {
		return nil, err
	}

	stats := &TreeStats{
		Path:      root,
		FileTypes: make(map[string]int64),
	}

	var scanDir func(dir string, depth int)
	scanDir = func(dir string, depth int) {
		infos, err := afero.ReadDir(fsys, dir)
		if err != nil {
			slog.Warn("skipping unreadable directory", "path", dir, "error", err)
			return
		}

		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}

		for _, info := range infos {
			childPath := filepath.Join(dir, info.Name())

			if info.IsDir() {
				stats.TotalDirs++
				scanDir(childPath, depth+1)
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}

			stats.TotalFiles++
			stats.TotalSize += info.Size()
			stats.FileTypes[strings.ToLower(filepath.Ext(info.Name()))]++
		}
	}

	scanDir(root, 0)

	return stats, nil
}

// CountEntries returns the number of directories and regular files under
// root, recursively.
func CountEntries(fsys afero.Fs, root string) (dirs, files int64, err error) {
	stats, err := CollectStats(fsys, root)
	if err != nil {
		return 0, 0, err
	}
	return stats.TotalDirs, stats.TotalFiles, nil
}

// TreeSize returns the total byte size of all regular files under root,
// recursively.
func TreeSize(fsys afero.Fs, root string) (int64, error) {
	stats, err := CollectStats(fsys, root)
	if err != nil {
		return 0, err
	}
	return stats.TotalSize, nil
}

// Subdirs returns every subdirectory under root, recursively, in depth-first
// lexicographic order. The root itself is not included.
func Subdirs(fsys afero.Fs, root string) ([]string, error) {
	if err := common.NewValidationUtils().ValidateScanRoot(fsys, root); err != nil {
		return nil, err
	}

	folders := make([]string, 0)

	var scanDir func(dir string)
	scanDir = func(dir string) {
		infos, err := afero.ReadDir(fsys, dir)
		if err != nil {
			slog.Warn("skipping unreadable directory", "path", dir, "error", err)
			return
		}

		for _, info := range infos {
			if !info.IsDir() {
				continue
			}
			childPath := filepath.Join(dir, info.Name())
			folders = append(folders, childPath)
			scanDir(childPath)
		}
	}

	scanDir(root)

	return folders, nil
}
