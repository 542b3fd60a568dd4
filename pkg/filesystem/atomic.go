package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trashlib/trash/pkg/logging"
	"github.com/trashlib/trash/pkg/must"
)

const (
	// atomicWriteTemporaryNamePrefix is the file name prefix to use for
	// intermediate temporary files used in atomic writes.
	atomicWriteTemporaryNamePrefix = TemporaryNamePrefix + "atomic-write"
)

// WriteFileAtomic writes a file to disk in an atomic fashion by using an
// intermediate temporary file that is swapped in place using a rename
// operation. The temporary file is created in the same directory as path, so
// the final rename is guaranteed to stay on a single device.
func WriteFileAtomic(path string, data []byte, permissions os.FileMode, logger *logging.Logger) error {
	// Create a temporary file. The os package already uses secure permissions
	// for creating temporary files, so we don't need to change them.
	temporary, err := os.CreateTemp(filepath.Dir(path), atomicWriteTemporaryNamePrefix)
	if err != nil {
		return errors.Wrap(err, "unable to create temporary file")
	}

	// Write data.
	if _, err = temporary.Write(data); err != nil {
		must.Close(temporary, logger)
		must.OSRemove(temporary.Name(), logger)
		return errors.Wrap(err, "unable to write data to temporary file")
	}

	// Close out the file.
	if err = temporary.Close(); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return errors.Wrap(err, "unable to close temporary file")
	}

	// Set the file's permissions.
	if err = os.Chmod(temporary.Name(), permissions); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return errors.Wrap(err, "unable to change file permissions")
	}

	// Rename the file into place. Since the temporary file lives alongside
	// the target, this should never cross a device boundary, but report
	// clearly if it somehow does (e.g. the target directory is a bind mount
	// point whose backing device changed underneath us).
	if err = os.Rename(temporary.Name(), path); err != nil {
		must.OSRemove(temporary.Name(), logger)
		if isCrossDeviceError(err) {
			return errors.Wrap(err, "unable to rename file across device boundary")
		}
		return errors.Wrap(err, "unable to rename file")
	}

	// Success.
	return nil
}
