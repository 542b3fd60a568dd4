// Package must provides helpers for releasing resources and performing
// best-effort cleanup on error paths, where the original error being
// returned already explains the failure and a secondary cleanup error should
// be logged rather than propagated or silently dropped.
package must

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/trashlib/trash/pkg/logging"
)

// Close closes c, logging a warning if it fails. Used on every defer path
// where the function's own return value already carries the operation's
// result.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("unable to close: %s", err.Error())
	}
}

// OSRemove removes the file or directory at name, logging a warning if it
// fails. Used to clean up temporary files on error paths where the caller is
// already returning the primary error.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil {
		logger.Warnf("unable to remove '%s': %s", name, err.Error())
	}
}

// Succeed logs a warning if err is non-nil, describing task as the operation
// that failed. Used for non-essential side effects (e.g. writing an optional
// diagnostic report) whose failure shouldn't block the primary operation's
// result.
func Succeed(err error, task string, logger *logging.Logger) {
	if err != nil {
		logger.Warnf("unable to complete %s: %s", task, err.Error())
	}
}

// CommandHelp prints c's help text, logging a warning if it fails.
func CommandHelp(c *cobra.Command, logger *logging.Logger) {
	if err := c.Help(); err != nil {
		logger.Warnf("unable to print help: %s", err.Error())
	}
}
