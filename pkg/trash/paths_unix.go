// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"os"
	"path/filepath"
	"strings"
)

// canonicalize resolves path to its absolute, symlink-free form. The final
// segment of the result is the name that must be preserved when the entry
// is moved into the trash.
func canonicalize(path string) (string, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(absolute)
}

// baseName extracts the final path segment of a canonical path. It fails if
// the path has no final segment to preserve (the pathological case of "/").
func baseName(canonical string) (string, bool) {
	name := filepath.Base(canonical)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", false
	}
	return name, true
}

// mkdirRecursive creates path and every missing ancestor with the given
// mode. Existing directories are not an error. It is os.MkdirAll: the mode
// of each directory it creates is masked by the process umask, and
// directories that already exist keep their own mode.
func mkdirRecursive(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

// isUnreserved reports whether b is an RFC 2396 "unreserved" character, or
// the path separator, and therefore passes through escapePath unescaped.
func isUnreserved(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '.' || b == '_' || b == '~' || b == '!' || b == '*' || b == '\'' || b == '(' || b == ')' || b == '-':
		return true
	case b == '/':
		return true
	default:
		return false
	}
}

// escapePath percent-encodes every byte of path that is not RFC 2396
// unreserved (and not '/'), using uppercase hex, for use as the Path= value
// of a trashinfo sidecar.
func escapePath(path string) string {
	var builder strings.Builder
	builder.Grow(len(path))
	const hex = "0123456789ABCDEF"
	for i := 0; i < len(path); i++ {
		b := path[i]
		if isUnreserved(b) {
			builder.WriteByte(b)
		} else {
			builder.WriteByte('%')
			builder.WriteByte(hex[b>>4])
			builder.WriteByte(hex[b&0x0f])
		}
	}
	return builder.String()
}
