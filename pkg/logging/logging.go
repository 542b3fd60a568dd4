package logging

import (
	"log"
	"os"
)

func init() {
	// Set the global logger to use standard output.
	log.SetOutput(os.Stdout)

	// Allow debug logging to be enabled without plumbing a flag through every
	// call site, matching how the CLI's other environment-driven toggles
	// (XDG_DATA_HOME, HOME) are read directly from the process environment.
	// The --log-level flag (see cmd/trash) takes precedence over this when
	// both are set, since it runs after this package is initialized.
	if os.Getenv("TRASH_DEBUG") != "" {
		CurrentLevel = LevelDebug
	}
}
