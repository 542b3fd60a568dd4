package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trashlib/trash/pkg/logging"
	"github.com/trashlib/trash/pkg/must"
	"github.com/trashlib/trash/pkg/trash"
)

// exitStatus holds the numeric status of the first failed move, for main to
// pass to os.Exit once cobra has finished running. It mirrors the grounding
// original's "return ret" from its own main, which propagates the raw status
// code as the process exit code rather than collapsing every failure to 1.
var exitStatus int

func rootMain(command *cobra.Command, arguments []string) error {
	if rootConfiguration.logLevel != "" {
		level, ok := logging.NameToLevel(rootConfiguration.logLevel)
		if !ok {
			return errors.Errorf("invalid log level: %s", rootConfiguration.logLevel)
		}
		logging.CurrentLevel = level
	}

	if rootConfiguration.version {
		fmt.Println("trash version 1.0.0")
		return nil
	}

	if len(arguments) == 0 {
		must.CommandHelp(command, logging.RootLogger)
		return nil
	}

	var report moveReport
	status := trash.Success
	for _, path := range arguments {
		entryStatus := trash.Success
		err := trash.Move(path)
		if err != nil {
			if taxonomised, ok := err.(*trash.Error); ok {
				entryStatus = taxonomised.Status()
			} else {
				entryStatus = trash.RenameFailed
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			if status == trash.Success {
				status = entryStatus
			}
		}
		report.Entries = append(report.Entries, moveReportEntry{
			Path:    path,
			Status:  int(entryStatus),
			Message: entryStatus.Message(),
		})
	}

	if rootConfiguration.reportPath != "" {
		must.Succeed(writeReport(rootConfiguration.reportPath, &report), "write report file", logging.RootLogger)
	}

	if status != trash.Success {
		exitStatus = int(status)
		return errors.Errorf("%s", status.Message())
	}
	return nil
}

var rootCommand = &cobra.Command{
	Use:          "trash <path>...",
	Short:        "trash moves files and directories to the operating system's trash or recycle bin",
	RunE:         rootMain,
	SilenceUsage: true,
}

var rootConfiguration struct {
	// help indicates whether or not help information should be shown.
	help bool
	// version indicates whether or not version information should be shown.
	version bool
	// reportPath, if non-empty, is where a JSON summary of the move is
	// written atomically after the command completes.
	reportPath string
	// logLevel, if non-empty, overrides TRASH_DEBUG and the default log
	// level (one of "disabled", "error", "warn", "info", "debug", "trace").
	logLevel string
}

func init() {
	flags := rootCommand.Flags()
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")
	flags.StringVar(&rootConfiguration.reportPath, "report", "", "Write a JSON summary of the operation to the given path")
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "", "Set the log level (disabled, error, warn, info, debug, trace)")

	cobra.MousetrapHelpText = ""
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		if exitStatus == 0 {
			exitStatus = 1
		}
		os.Exit(exitStatus)
	}
}
