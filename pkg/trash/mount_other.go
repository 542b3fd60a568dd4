// +build netbsd openbsd dragonfly

package trash

// resolveMount on these Unix variants treats "/" as the only known mount
// point: it returns "/" for every device and never fails. x/sys/unix does
// not expose a portable mount-table enumeration for these kernels the way it
// does for Linux (mountinfo) and FreeBSD (Getfsstat). A source on a
// filesystem mounted anywhere other than "/" (and not on the home trash's
// device) therefore gets a top-directory trash under "/", on a different
// device, and its move fails with TopDirTrashFailed or RenameFailed instead
// of landing in a trash on its own filesystem.
func resolveMount(device uint64) (string, error) {
	return "/", nil
}
