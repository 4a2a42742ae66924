// Package scan enumerates the regular files under a directory tree and
// projects each one into a caller-selected shape: a bare path, or a record
// pairing the path with a timestamp and/or byte size.
//
// Traversal is depth-first with the entries of each directory visited in
// lexicographic filename order; when recursion is enabled a subdirectory's
// results are interleaved at the subdirectory's position. Per-entry errors
// (unreadable subdirectories, files that vanish mid-scan) are skipped and
// logged as warnings; only a bad root aborts the scan.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/dirscan/dirscan/common"

	"github.com/lestrrat-go/strftime"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
)

// Scanner enumerates files on a filesystem. NewScanner operates on the OS
// filesystem; any afero.Fs can be injected for testing.
type Scanner struct {
	fsys      afero.Fs
	validator *common.ValidationUtils
}

// NewScanner creates a Scanner over the OS filesystem
func NewScanner() *Scanner {
	return NewScannerWithFs(afero.NewOsFs())
}

// NewScannerWithFs creates a Scanner over the given filesystem
func NewScannerWithFs(fsys afero.Fs) *Scanner {
	return &Scanner{
		fsys:      fsys,
		validator: common.NewValidationUtils(),
	}
}

// scanState carries the per-call configuration and the result being built
type scanState struct {
	opts      Options
	root      string
	exts      map[string]bool
	formatter *strftime.Strftime
	ignored   *ignore.GitIgnore
	result    *Result
}

// Scan walks the tree rooted at root and returns every regular file that
// passes the extension filter, projected per opts. The whole tree is
// materialized before returning. The root must exist and be a directory;
// failures there wrap common.ErrRootNotExist / common.ErrNotDirectory and
// no partial result is returned.
func (s *Scanner) Scan(ctx context.Context, root string, opts Options) (*Result, error) {
	if err := s.validator.ValidateScanRoot(s.fsys, root); err != nil {
		return nil, err
	}

	st := &scanState{
		opts: opts,
		root: root,
		result: &Result{
			Kind: resultKind(opts),
		},
	}

	if exts := NormalizeExtensions(opts.Extensions...); len(exts) > 0 {
		st.exts = make(map[string]bool, len(exts))
		for _, ext := range exts {
			st.exts[ext] = true
		}
	}

	// The format template is only exercised when a formatted timestamp was
	// requested, so this is its first use.
	if opts.wantsTimestamp() && !opts.AsDateTime {
		formatter, err := strftime.New(opts.TimeFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", common.ErrTimeFormat, err)
		}
		st.formatter = formatter
	}

	if len(opts.IgnorePatterns) > 0 {
		st.ignored = ignore.CompileIgnoreLines(opts.IgnorePatterns...)
	}

	start := time.Now()

	var err error
	if opts.Workers > 1 {
		err = s.scanConcurrent(ctx, st)
	} else {
		err = s.walk(ctx, st, root)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("scan completed",
		"root", root,
		"matched", st.result.Len(),
		"duration", time.Since(start))

	return st.result, nil
}

// walk is the sequential depth-first traversal
func (s *Scanner) walk(ctx context.Context, st *scanState, dir string) error {
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
		// Unreadable subtree: skip and continue
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

		if info.IsDir() {
			if !st.opts.Recurse {
				continue
			}
			if err := s.walk(ctx, st, childPath); err != nil {
				return err
			}
			continue
		}

		st.emit(childPath, info)
	}

	return nil
}

// skip reports whether an entry is excluded from traversal and projection.
// Non-regular files (symlinks, devices, sockets) are always excluded;
// directories are excluded only by ignore patterns, since they are
// traversal candidates rather than results.
func (st *scanState) skip(path string, info os.FileInfo) bool {
	if st.ignored != nil && st.ignored.MatchesPath(st.relative(path)) {
		slog.Debug("ignoring path", "path", path)
		return true
	}

	if info.IsDir() {
		return false
	}
	if !info.Mode().IsRegular() {
		slog.Debug("skipping non-regular file", "path", path, "mode", info.Mode().String())
		return true
	}
	if st.exts != nil && !st.exts[filepath.Ext(info.Name())] {
		return true
	}
	return false
}

// emit projects one surviving file into the result
func (st *scanState) emit(path string, info os.FileInfo) {
	if st.result.Kind == KindPaths {
		st.result.Paths = append(st.result.Paths, path)
		return
	}

	entry := Entry{Path: path}

	if st.opts.wantsTimestamp() {
		ts := info.ModTime()
		if st.opts.TimeType == TimeCreated {
			ts = createdTime(info)
		}
		if st.opts.AsDateTime {
			entry.Time = &ts
		} else {
			entry.TimeString = st.formatter.FormatString(ts)
		}
	}

	if st.opts.IncludeSize {
		size := info.Size()
		entry.Size = &size
	}

	st.result.Entries = append(st.result.Entries, entry)
}

// relative rewrites path relative to the scan root for ignore matching, so
// patterns behave like a .gitignore sitting at the root. Separators are
// normalized to slashes since gitignore patterns use them.
func (st *scanState) relative(path string) string {
	rel, err := filepath.Rel(st.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// resultKind picks the output shape once per call: bare paths when no
// metadata was requested, structured records otherwise
func resultKind(opts Options) Kind {
	if !opts.wantsTimestamp() && !opts.IncludeSize {
		return KindPaths
	}
	return KindRecords
}
