package scan

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
)

// scanConcurrent walks the tree level by level, listing the directories of
// each level in a bounded worker pool. Because completion order is not the
// traversal order, results are sorted lexicographically by path before
// return, which keeps the output deterministic across runs.
func (s *Scanner) scanConcurrent(ctx context.Context, st *scanState) error {
	var mu sync.Mutex // guards st.result and nextLevel

	currentLevel := []string{st.root}

	for len(currentLevel) > 0 {
		nextLevel := make([]string, 0)

		levelPool := pool.New().WithMaxGoroutines(st.opts.Workers).WithContext(ctx)

		for _, dir := range currentLevel {
			dir := dir // per-iteration copy; required while go.mod targets go < 1.22
			levelPool.Go(func(ctx context.Context) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				infos, err := afero.ReadDir(s.fsys, dir)
				if err != nil {
					if dir == st.root {
						return fmt.Errorf("failed to read directory %s: %w", dir, err)
					}
					slog.Warn("skipping unreadable directory",
						"path", dir,
						"error", err)
					return nil
				}

				for _, info := range infos {
					childPath := filepath.Join(dir, info.Name())

					if st.skip(childPath, info) {
						continue
					}

					mu.Lock()
					if info.IsDir() {
						if st.opts.Recurse {
							nextLevel = append(nextLevel, childPath)
						}
					} else {
						st.emit(childPath, info)
					}
					mu.Unlock()
				}

				return nil
			})
		}

		if err := levelPool.Wait(); err != nil {
			return err
		}

		currentLevel = nextLevel
	}

	if st.result.Kind == KindPaths {
		sort.Strings(st.result.Paths)
	} else {
		sort.Slice(st.result.Entries, func(i, j int) bool {
			return st.result.Entries[i].Path < st.result.Entries[j].Path
		})
	}

	return nil
}
