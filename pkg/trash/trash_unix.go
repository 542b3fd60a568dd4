// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/trashlib/trash/pkg/filesystem"
	"github.com/trashlib/trash/pkg/logging"
)

// Move implements the FreeDesktop.org Trash Specification v1.0 orchestrator
// (§4.8): it composes the path utilities, trash-root locator, name
// allocator, sidecar writer, commit step, and directory-size cache updater
// into a single move-to-trash transaction.
func Move(path string) error {
	logger := logging.RootLogger.Sublogger(uuid.NewString())

	canonicalPath, err := canonicalize(path)
	if err != nil {
		return newError(RealPathFailed, err)
	}
	logger.Debugf("canonicalized %q to %q", path, canonicalPath)

	basename, ok := baseName(canonicalPath)
	if !ok {
		return newError(NameExtractFailed, nil)
	}

	sourceDevice, err := filesystem.DeviceID(canonicalPath)
	if err != nil {
		return newError(StatFailed, err)
	}

	root, err := resolveRoot(sourceDevice)
	if err != nil {
		if e, ok := err.(*Error); ok {
			return e
		}
		return newError(TopDirTrashFailed, err)
	}
	logger.Debugf("selected %s trash root at %q", root.Kind, root.Base)

	// The deletion timestamp is computed once and held fixed across every
	// retry below, matching the reference implementation: only the counter
	// (or the switch to the random form) changes between attempts.
	deletionTime := time.Now()

	entry, err := allocateEntry(root, basename, deletionTime, canonicalPath, logger)
	if err != nil {
		return err
	}
	logger.Debugf("allocated stem %q", entry.Name)

	if err := commit(canonicalPath, entry, logger); err != nil {
		return newError(RenameFailed, err)
	}
	logger.Debugf("moved %q into %q", canonicalPath, entry.FilePath)

	if err := updateSizeCache(root, logger); err != nil {
		logger.Warn(err)
		return newError(SizeCacheFailed, err)
	}
	if info, statErr := os.Stat(root.SizeCache); statErr == nil {
		logger.Debugf("refreshed %q (%s)", root.SizeCache, humanize.Bytes(uint64(info.Size())))
	}

	return nil
}

// maxCounterRetries bounds the standard-form retry loop before the
// orchestrator falls back to the random form, matching the counter wraparound
// condition described in §4.4 and §4.8 without actually looping 2^32 times
// in the pathological case of sustained, never-ending collisions.
const maxCounterRetries = 1 << 16

// allocateEntry drives the NAMING state of the orchestrator (§4.8): it
// repeatedly allocates a candidate name and attempts to create its sidecar,
// retrying on collision (incrementing the counter, then forcing the random
// form) until one succeeds or CollisionExhausted is reached.
func allocateEntry(root *Root, basename string, deletionTime time.Time, canonicalPath string, logger *logging.Logger) (*Entry, error) {
	var counter uint32
	forceRandom := false
	triedRandom := false

	for {
		candidate, err := allocateCandidate(basename, deletionTime, counter, forceRandom)
		if err != nil {
			return nil, newError(FilenameGenFailed, err)
		}

		entry := &Entry{
			Name:     candidate,
			InfoPath: root.InfoDir + "/" + candidate + trashinfoSuffix,
			FilePath: root.FilesDir + "/" + candidate,
		}

		collision, err := writeSidecar(entry.InfoPath, canonicalPath, deletionTime, logger)
		if err != nil {
			return nil, newError(SidecarFailed, err)
		}
		if !collision {
			return entry, nil
		}

		if forceRandom {
			if triedRandom {
				return nil, newError(CollisionExhausted, nil)
			}
			triedRandom = true
			continue
		}

		counter++
		if counter == maxCounterRetries {
			forceRandom = true
		}
	}
}
