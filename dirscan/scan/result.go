package scan

import (
	"time"
)

// Kind tags the shape of a scan result. It is chosen once per call from the
// options: a scan that requests neither a timestamp nor a size yields bare
// paths, anything else yields structured entries.
type Kind int

const (
	// KindPaths means Result.Paths is populated and Result.Entries is nil
	KindPaths Kind = iota
	// KindRecords means Result.Entries is populated and Result.Paths is nil
	KindRecords
)

// Entry is the projection of one matched file. Optional fields are nil
// pointers when the corresponding metadata was not requested.
type Entry struct {
	Path string // Absolute or root-relative path, as derived from the scan root

	// Time holds the structured timestamp when one was requested with
	// AsDateTime; TimeString holds the strftime-formatted rendering when one
	// was requested without. At most one of the two is set.
	Time       *time.Time
	TimeString string

	// Size holds the byte size when IncludeSize was requested
	Size *int64
}

// Result is the materialized outcome of a scan: a tagged union of the two
// output shapes. Ordering follows the documented traversal order.
type Result struct {
	Kind    Kind
	Paths   []string
	Entries []Entry
}

// Len returns the number of scanned items regardless of shape
func (r *Result) Len() int {
	if r.Kind == KindPaths {
		return len(r.Paths)
	}
	return len(r.Entries)
}
