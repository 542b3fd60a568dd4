package filesystem

// HomeDirectory is the cached path to the current user's home directory. It
// is resolved once at process start, since the underlying lookup is
// surprisingly expensive and the value doesn't change during a process's
// lifetime.
//
// This is a convenience cache for ambient tooling (e.g. default CLI report
// paths). The trash root locator does not use it: it performs its own
// HOME/XDG_DATA_HOME resolution that returns an error instead of panicking,
// since a missing home directory is a reportable Status (NoHomeTrash), not a
// process-fatal condition.
var HomeDirectory = mustComputeHomeDirectory()
