//go:build darwin

package scan

import (
	"os"
	"syscall"
	"time"
)

// createdTime extracts the file birth time from FileInfo (macOS). Falls back
// to the modification time when the info did not come from the OS filesystem.
func createdTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
