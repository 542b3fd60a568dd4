// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	securejoin "github.com/cyphar/filepath-securejoin"
	"golang.org/x/sys/unix"

	"github.com/trashlib/trash/pkg/filesystem"
)

// homeTrashBase resolves $XDG_DATA_HOME/Trash, falling back to
// $HOME/.local/share/Trash, per §4.3 step 1. It fails with NoHomeTrash if
// neither environment variable yields a usable base.
func homeTrashBase() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return dataHome + "/Trash", nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return home + "/.local/share/Trash", nil
	}
	return "", newError(NoHomeTrash, nil)
}

// ensureRootDirs creates Base, InfoDir, and FilesDir (in that order) with
// mode 0700, as required for both the home trash and top-directory user
// trash. Already-existing directories are not an error.
func ensureRootDirs(root *Root) error {
	if err := mkdirRecursive(root.Base, 0700); err != nil {
		return err
	}
	if err := mkdirRecursive(root.InfoDir, 0700); err != nil {
		return err
	}
	return mkdirRecursive(root.FilesDir, 0700)
}

// resolveRoot implements the trash-root locator (§4.3): it decides between
// the home trash and the two top-directory trash shapes based on whether
// the source and the home trash share a filesystem device.
func resolveRoot(sourceDevice uint64) (*Root, error) {
	base, err := homeTrashBase()
	if err != nil {
		return nil, err
	}

	homeDevice, err := filesystem.DeviceID(base)
	if err != nil {
		// The home trash directory (or one of its ancestors) may not exist
		// yet; probe the nearest existing ancestor instead of failing
		// outright, since a first-ever trash operation on this machine is
		// the common case, not an error.
		if homeDevice, err = deviceIDOfNearestAncestor(base); err != nil {
			return nil, newError(StatFailed, err)
		}
	}

	if sourceDevice == homeDevice {
		root := newRoot(RootHome, base)
		if err := ensureRootDirs(root); err != nil {
			return nil, newError(MkdirHomeFailed, err)
		}
		return root, nil
	}

	mount, err := resolveMount(sourceDevice)
	if err != nil {
		return nil, newError(TopDirTrashFailed, err)
	}

	if root, err := tryCase1(mount); err == nil {
		return root, nil
	}

	root, err := tryCase2(mount)
	if err != nil {
		return nil, newError(TopDirTrashFailed, err)
	}
	return root, nil
}

// deviceIDOfNearestAncestor walks up from path until it finds a directory
// that exists, and returns its device ID.
func deviceIDOfNearestAncestor(path string) (uint64, error) {
	current := path
	for {
		if id, err := filesystem.DeviceID(current); err == nil {
			return id, nil
		}
		parent := parentDir(current)
		if parent == current {
			return 0, os.ErrNotExist
		}
		current = parent
	}
}

// parentDir returns the directory containing path using simple slash
// splitting, since the home trash base is always slash-joined by this
// package rather than supplied by the caller.
func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			if i == 0 {
				return "/"
			}
			return path[:i]
		}
	}
	return path
}

// tryCase1 attempts the admin-provided top-directory trash
// ($mount/.Trash/$uid), accepted only if $mount/.Trash exists, is a
// directory, is not a symbolic link, and has the sticky bit set (§4.3 step
// 3, §3 "Sticky-bit safety").
func tryCase1(mount string) (*Root, error) {
	adminDir, err := securejoin.SecureJoin(mount, ".Trash")
	if err != nil {
		return nil, err
	}
	// SecureJoin resolves symbolic links, so a .Trash that is a link yields a
	// path other than the plain $mount/.Trash.
	if adminDir != filepath.Join(mount, ".Trash") {
		return nil, fmt.Errorf(".Trash is a symbolic link")
	}

	info, err := os.Lstat(adminDir)
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf(".Trash is a symbolic link")
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".Trash is not a directory")
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, fmt.Errorf("unable to inspect .Trash mode bits")
	}
	if uint32(stat.Mode)&unix.S_ISVTX == 0 {
		return nil, fmt.Errorf(".Trash does not have the sticky bit set")
	}

	base, err := securejoin.SecureJoin(adminDir, uidString())
	if err != nil {
		return nil, err
	}
	root := newRoot(RootTopAdmin, base)
	if err := mkdirRecursive(root.InfoDir, 0700); err != nil {
		return nil, err
	}
	if err := mkdirRecursive(root.FilesDir, 0700); err != nil {
		return nil, err
	}
	return root, nil
}

// tryCase2 prepares the user-provided top-directory trash
// ($mount/.Trash-$uid), used whenever case 1 is unavailable or fails its
// safety checks (§4.3 step 4).
func tryCase2(mount string) (*Root, error) {
	base, err := securejoin.SecureJoin(mount, ".Trash-"+uidString())
	if err != nil {
		return nil, err
	}
	root := newRoot(RootTopUser, base)
	if err := ensureRootDirs(root); err != nil {
		return nil, err
	}
	return root, nil
}

// uidString returns the calling process's real user ID as a decimal string.
func uidString() string {
	return fmt.Sprintf("%d", os.Getuid())
}
