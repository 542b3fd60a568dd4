// +build freebsd

package trash

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/trashlib/trash/pkg/filesystem"
)

// resolveMount returns the mount directory of the filesystem identified by
// device, using the kernel's in-memory mount list (the BSD equivalent of
// Linux's mount table file — there is no on-disk mtab to drift from).
func resolveMount(device uint64) (string, error) {
	count, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return "", err
	}
	stats := make([]unix.Statfs_t, count)
	if _, err := unix.Getfsstat(stats, unix.MNT_NOWAIT); err != nil {
		return "", err
	}

	for _, stat := range stats {
		mountPoint := unix.ByteSliceToString(stat.Mntonname[:])
		id, err := filesystem.DeviceID(mountPoint)
		if err != nil {
			continue
		}
		if id == device {
			return mountPoint, nil
		}
	}
	return "", os.ErrNotExist
}
