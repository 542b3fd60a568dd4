// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"fmt"
	"os"
	"time"

	"github.com/trashlib/trash/pkg/logging"
	"github.com/trashlib/trash/pkg/must"
)

// sidecarContent composes the literal three-line .trashinfo block (§4.5,
// §6 "Sidecar file format").
func sidecarContent(canonicalPath string, deletionTime time.Time) string {
	return fmt.Sprintf(
		"[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapePath(canonicalPath),
		deletionTime.Format("2006-01-02T15:04:05"),
	)
}

// writeSidecar creates infoPath with create-exclusive semantics. It reports
// collision (the path already existed) distinctly from any other failure,
// matching the orchestrator's NAMING state transitions in §4.8.
func writeSidecar(infoPath, canonicalPath string, deletionTime time.Time, logger *logging.Logger) (collision bool, err error) {
	content := sidecarContent(canonicalPath, deletionTime)

	file, err := os.OpenFile(infoPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			return true, nil
		}
		return false, err
	}

	n, writeErr := file.WriteString(content)
	if writeErr == nil && n < len(content) {
		writeErr = fmt.Errorf("short write of trashinfo sidecar: wrote %d of %d bytes", n, len(content))
	}
	must.Close(file, logger)
	if writeErr != nil {
		must.OSRemove(infoPath, logger)
		return false, writeErr
	}

	return false, nil
}
