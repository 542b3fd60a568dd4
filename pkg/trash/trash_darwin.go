package trash

import (
	"bytes"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/trashlib/trash/pkg/logging"
)

// AppleScriptError carries the raw stderr output from the osascript
// invocation backing Move, for callers that want the underlying NSError
// detail the Finder reported (§6 "an additional variant exposes the
// underlying error object").
type AppleScriptError struct {
	// Output is osascript's stderr output.
	Output string
}

// Error implements the error interface.
func (e *AppleScriptError) Error() string {
	return e.Output
}

// Move moves path to the Trash by asking Finder to do it, which is the
// same path NSFileManager's trashItemAtURL:resultingItemURL:error: takes
// under the hood, without requiring cgo to call into Foundation directly.
func Move(path string) error {
	err, scriptErr := MoveWithError(path)
	if scriptErr != nil {
		return newError(RenameFailed, scriptErr)
	}
	return err
}

// MoveWithError moves path to the Trash via Finder and, on failure,
// exposes the raw AppleScript/osascript error separately from the
// taxonomised error so callers that want the original diagnostic text can
// retrieve it without parsing err's message.
func MoveWithError(path string) (error, *AppleScriptError) {
	logger := logging.RootLogger.Sublogger("darwin")

	quoted := shellquote.Join(path)
	script := "tell application \"Finder\" to delete POSIX file " + quoted

	cmd := exec.Command("osascript", "-e", script)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		logger.Debugf("osascript failed for %q: %s", path, stderr.String())
		return newError(RenameFailed, runErr), &AppleScriptError{Output: stderr.String()}
	}

	return nil, nil
}
