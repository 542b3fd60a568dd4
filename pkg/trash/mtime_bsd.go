// +build freebsd netbsd openbsd dragonfly

package trash

import (
	"os"
	"syscall"
)

// mtimeSeconds extracts the modification time, in seconds since the epoch,
// from an os.FileInfo backed by a BSD *syscall.Stat_t, whose timestamp
// field is named Mtimespec rather than Linux's Mtim.
func mtimeSeconds(info os.FileInfo) (int64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return int64(stat.Mtimespec.Sec), true
}
