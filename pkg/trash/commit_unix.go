// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"os"

	"github.com/trashlib/trash/pkg/logging"
	"github.com/trashlib/trash/pkg/must"
)

// commit renames sourcePath into its allocated trash location. On failure
// it removes the sidecar first, preserving the pairing invariant that a
// sidecar never exists without its paired entry (§4.6).
func commit(sourcePath string, entry *Entry, logger *logging.Logger) error {
	if err := os.Rename(sourcePath, entry.FilePath); err != nil {
		must.OSRemove(entry.InfoPath, logger)
		return err
	}
	return nil
}
