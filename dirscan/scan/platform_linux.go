//go:build linux

package scan

import (
	"os"
	"syscall"
	"time"
)

// createdTime extracts the creation-like timestamp from FileInfo (Linux).
// Linux does not expose a true birth time through os.FileInfo, so the inode
// change time is the closest available equivalent. Falls back to the
// modification time when the info did not come from the OS filesystem.
func createdTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	}
	return info.ModTime()
}
