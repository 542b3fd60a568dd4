package filesystem

const (
	// TemporaryNamePrefix is the file name prefix used for intermediate
	// temporary files created during atomic writes. It may be suffixed with
	// additional elements if desired.
	TemporaryNamePrefix = ".trash-temporary-"
)
