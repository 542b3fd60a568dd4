package trash

// RootKind identifies which of the three FreeDesktop trash root shapes a
// Root value represents.
type RootKind int

const (
	// RootHome is $XDG_DATA_HOME/Trash (or its $HOME/.local/share/Trash
	// fallback), used when the source lives on the same device as the
	// user's home trash.
	RootHome RootKind = iota
	// RootTopAdmin is $mount/.Trash/$uid, the sticky-bit-gated admin-
	// provided top-directory trash (FreeDesktop "case 1").
	RootTopAdmin
	// RootTopUser is $mount/.Trash-$uid, the user-provided top-directory
	// trash (FreeDesktop "case 2").
	RootTopUser
)

// String returns a short human-readable name for the root kind, used in log
// lines.
func (k RootKind) String() string {
	switch k {
	case RootHome:
		return "home"
	case RootTopAdmin:
		return "top-admin"
	case RootTopUser:
		return "top-user"
	default:
		return "unknown"
	}
}

// Root is a resolved trash root: the directory triple that holds trashed
// items and their sidecars for one user on one filesystem.
type Root struct {
	// Kind identifies which of the three root shapes this is.
	Kind RootKind
	// Base is the root directory itself.
	Base string
	// InfoDir is Base/info, holding ".trashinfo" sidecars.
	InfoDir string
	// FilesDir is Base/files, holding the trashed entries themselves.
	FilesDir string
	// SizeCache is Base/directorysizes.
	SizeCache string
}

// newRoot derives the info/files/size-cache paths for a root with the given
// kind and base directory.
func newRoot(kind RootKind, base string) *Root {
	return &Root{
		Kind:      kind,
		Base:      base,
		InfoDir:   base + "/info",
		FilesDir:  base + "/files",
		SizeCache: base + "/directorysizes",
	}
}

// Entry is a single trashed item: the shared name stem and the two paths
// derived from it.
type Entry struct {
	// Name is the shared stem: the trashed file is FilesDir/Name and its
	// sidecar is InfoDir/Name+".trashinfo".
	Name string
	// InfoPath is the sidecar's full path.
	InfoPath string
	// FilePath is the trashed entry's full path.
	FilePath string
}
