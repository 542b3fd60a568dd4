// +build linux

package trash

import (
	"bufio"
	"os"
	"strings"

	"github.com/trashlib/trash/pkg/filesystem"
)

// resolveMount returns the mount directory of the filesystem identified by
// device, by walking the kernel's mount table and lstat-ing each mount
// point until one matches.
//
// /proc/self/mountinfo is preferred over the historical /etc/mtab: mtab is
// a userspace-maintained file that can drift from what the kernel actually
// has mounted (bind mounts, mount namespaces, lazy unmounts), while
// mountinfo is generated by the kernel itself. /proc/mounts is used as a
// fallback for kernels or containers where mountinfo is unavailable.
func resolveMount(device uint64) (string, error) {
	if path, err := resolveMountFromFile("/proc/self/mountinfo", mountPointFromMountinfoLine, device); err == nil {
		return path, nil
	}
	if path, err := resolveMountFromFile("/proc/mounts", mountPointFromMountsLine, device); err == nil {
		return path, nil
	}
	return "", newError(TopDirTrashFailed, os.ErrNotExist)
}

// mountPointFromMountinfoLine extracts the mount point (field 5) from one
// line of /proc/self/mountinfo.
func mountPointFromMountinfoLine(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return "", false
	}
	return fields[4], true
}

// mountPointFromMountsLine extracts the mount point (field 2) from one line
// of /proc/mounts, which has the same column layout as /etc/fstab.
func mountPointFromMountsLine(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

// resolveMountFromFile scans a mount-table file, applying extract to each
// line to recover a candidate mount point, and returns the first whose
// device ID matches.
func resolveMountFromFile(path string, extract func(string) (string, bool), device uint64) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		mountPoint, ok := extract(scanner.Text())
		if !ok {
			continue
		}
		mountPoint = unescapeOctal(mountPoint)
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

// unescapeOctal reverses the \NNN octal escaping that the kernel applies to
// spaces, tabs, newlines, and backslashes in mount table paths.
func unescapeOctal(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var builder strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			var value int
			ok := true
			for j := 1; j <= 3; j++ {
				c := s[i+j]
				if c < '0' || c > '7' {
					ok = false
					break
				}
				value = value*8 + int(c-'0')
			}
			if ok {
				builder.WriteByte(byte(value))
				i += 3
				continue
			}
		}
		builder.WriteByte(s[i])
	}
	return builder.String()
}
