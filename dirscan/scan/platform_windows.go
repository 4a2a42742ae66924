//go:build windows

package scan

import (
	"os"
	"syscall"
	"time"
)

// createdTime extracts the file creation time from FileInfo (Windows). Falls
// back to the modification time when the info did not come from the OS
// filesystem.
func createdTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, stat.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
