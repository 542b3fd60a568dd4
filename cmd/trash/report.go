package main

import (
	"encoding/json"
	"path/filepath"

	"github.com/trashlib/trash/pkg/filesystem"
	"github.com/trashlib/trash/pkg/logging"
)

// moveReportEntry is the per-path outcome recorded in a --report file.
type moveReportEntry struct {
	Path    string `json:"path"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// moveReport is the JSON document written atomically by --report. It's a
// diagnostic summary for scripting integration, not an index of trash
// contents: it records only the paths given on this invocation's command
// line, not anything already in the trash.
type moveReport struct {
	Entries []moveReportEntry `json:"entries"`
}

// writeReport serializes report and writes it atomically to path. A
// relative path is resolved against the user's home directory, matching
// the convention other dotfile-adjacent tooling in this family of CLIs
// uses for output paths that aren't explicitly rooted.
func writeReport(path string, report *moveReport) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(filesystem.HomeDirectory, path)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	return filesystem.WriteFileAtomic(path, data, 0600, logging.RootLogger)
}
