package scan

import (
	"strings"

	internal "github.com/ZanzyTHEbar/dirscan/dirscan"
	"github.com/ZanzyTHEbar/dirscan/dirscan/config"
)

// TimeType selects which filesystem timestamp a scan retrieves
type TimeType string

const (
	TimeCreated  TimeType = "created"
	TimeModified TimeType = "modified"
	TimeNone     TimeType = "none"
)

// Options configures a single scan operation. The zero value requests no
// metadata at all and does not recurse; use DefaultOptions for the documented
// defaults (modified time as a formatted string, recursive).
type Options struct {
	TimeType       TimeType // Which timestamp to fetch, or TimeNone
	Extensions     []string // Extension allow-list (empty = all files)
	AsDateTime     bool     // Structured time.Time vs formatted string
	IncludeSize    bool     // Include byte size
	TimeFormat     string   // strftime template for formatted timestamps
	Recurse        bool     // Descend into subdirectories
	IgnorePatterns []string // gitignore-style exclusions
	Workers        int      // Concurrent traversal when > 1 (0 or 1 = sequential)
}

// wantsTimestamp reports whether a timestamp should be retrieved per file
func (o Options) wantsTimestamp() bool {
	return o.TimeType == TimeCreated || o.TimeType == TimeModified
}

// DefaultOptions returns sensible defaults for scan operations
func DefaultOptions() Options {
	return Options{
		TimeType:    TimeModified,
		AsDateTime:  false,
		IncludeSize: false,
		TimeFormat:  internal.DefaultTimeFormat,
		Recurse:     true,
		Workers:     0,
	}
}

// OptionsFromConfig builds Options from loaded configuration. Unset string
// fields fall back to DefaultOptions; booleans and Workers mirror the config
// verbatim, since LoadConfig already seeds them with the documented defaults.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}

	if cfg.Scan.TimeType != "" {
		opts.TimeType = TimeType(cfg.Scan.TimeType)
	}
	if cfg.Scan.TimeFormat != "" {
		opts.TimeFormat = cfg.Scan.TimeFormat
	}
	opts.AsDateTime = cfg.Scan.AsDateTime
	opts.IncludeSize = cfg.Scan.IncludeSize
	opts.Recurse = cfg.Scan.Recurse
	opts.Extensions = NormalizeExtensions(cfg.Scan.Extensions...)
	opts.IgnorePatterns = cfg.Scan.IgnorePatterns
	opts.Workers = cfg.Scan.Workers

	return opts
}

// NormalizeExtensions canonicalizes an extension allow-list. Each item may be
// given with or without a leading dot, and a single item may hold several
// comma-separated extensions ("py, txt"). The result is a dot-prefixed,
// deduplicated list in first-seen order. Matching stays case-sensitive, so
// case is preserved as given.
func NormalizeExtensions(extensions ...string) []string {
	if len(extensions) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(extensions))
	normalized := make([]string, 0, len(extensions))

	for _, item := range extensions {
		for _, ext := range strings.Split(item, ",") {
			ext = strings.TrimSpace(ext)
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			if seen[ext] {
				continue
			}
			seen[ext] = true
			normalized = append(normalized, ext)
		}
	}

	if len(normalized) == 0 {
		return nil
	}
	return normalized
}
