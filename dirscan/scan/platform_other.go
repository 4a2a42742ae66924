//go:build !linux && !darwin && !windows

package scan

import (
	"os"
	"time"
)

// createdTime has no portable source on this platform; the modification time
// is the best available stand-in.
func createdTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
