// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/trashlib/trash/pkg/logging"
	"github.com/trashlib/trash/pkg/must"
	"github.com/trashlib/trash/pkg/random"
)

// subtreeSize walks dir with lstat, summing st_size for every regular file
// reachable from it. Symbolic links and other non-regular kinds contribute
// 0 (§4.7 step 1).
func subtreeSize(dir string) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, entry := range entries {
		path := dir + "/" + entry.Name()
		info, err := os.Lstat(path)
		if err != nil {
			// A concurrent mutation of the trash removed this entry out
			// from under us; the cache is best-effort, so just skip it.
			continue
		}
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			// Contributes 0.
		case info.IsDir():
			sub, err := subtreeSize(path)
			if err != nil {
				continue
			}
			total += sub
		case info.Mode().IsRegular():
			total += uint64(info.Size())
		}
	}
	return total, nil
}

// updateSizeCache implements the directory-size cache updater (§4.7): for
// each immediate child directory of root.FilesDir, it computes the
// subtree's byte size and the mtime of its paired sidecar, then atomically
// replaces root.SizeCache with the freshly computed table.
func updateSizeCache(root *Root, logger *logging.Logger) error {
	children, err := os.ReadDir(root.FilesDir)
	if err != nil {
		return err
	}

	var rows strings.Builder
	for _, child := range children {
		if !child.IsDir() {
			// Regular files directly under files/ are not recorded; the
			// cache concerns subtrees only.
			continue
		}

		sidecarPath := root.InfoDir + "/" + child.Name() + trashinfoSuffix
		sidecarInfo, err := os.Lstat(sidecarPath)
		if err != nil {
			// Missing sidecar: skip silently, per §4.7 step 2.
			continue
		}
		mtime, ok := mtimeSeconds(sidecarInfo)
		if !ok {
			continue
		}

		size, err := subtreeSize(root.FilesDir + "/" + child.Name())
		if err != nil {
			continue
		}

		fmt.Fprintf(&rows, "%d %d %s\n", size, mtime, child.Name())
	}

	return replaceSizeCache(root, rows.String(), logger)
}

// replaceSizeCache writes contents to a fresh random-named temporary file
// inside root.Base and renames it over root.SizeCache, so a concurrent
// reader always observes either the pre- or post-update file (§5 "Atomic
// cache swap").
func replaceSizeCache(root *Root, contents string, logger *logging.Logger) error {
	raw, err := random.New(random.CollisionResistantLength)
	if err != nil {
		return err
	}
	temporaryPath := root.Base + "/." + hex.EncodeToString(raw)

	file, err := os.OpenFile(temporaryPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(contents); err != nil {
		must.Close(file, logger)
		must.OSRemove(temporaryPath, logger)
		return err
	}
	must.Close(file, logger)

	if err := os.Rename(temporaryPath, root.SizeCache); err != nil {
		must.OSRemove(temporaryPath, logger)
		return err
	}
	return nil
}
