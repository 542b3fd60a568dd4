// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/trashlib/trash/pkg/random"
)

const (
	// trashinfoSuffix is appended to an entry's stem to form its sidecar
	// name.
	trashinfoSuffix = ".trashinfo"

	// nameMaxConservative stands in for pathconf(files_dir, _PC_NAME_MAX),
	// which Go has no portable binding for. 255 is the filename length
	// limit of every filesystem this package targets (ext4, xfs, btrfs,
	// apfs's Unix-visible form, ufs, zfs). The limit is not queried from
	// the filesystem: on a filesystem with a smaller limit, a candidate
	// longer than that limit is still returned, and creating its sidecar
	// fails.
	nameMaxConservative = 255
)

// allocateCandidate implements the name allocator (§4.4): given a basename,
// a deletion timestamp held fixed across retries within one call, a
// counter, and whether the random form is being forced, it produces one
// candidate stem. It performs no uniqueness checking of its own — that is
// the sidecar writer's job, via O_EXCL.
func allocateCandidate(basename string, deletionTime time.Time, counter uint32, forceRandom bool) (string, error) {
	if !forceRandom {
		timestamp := deletionTime.Format("20060102150405")
		candidate := basename + timestamp + fmt.Sprintf("%x", counter)
		if nameMaxConservative-len(candidate+trashinfoSuffix) > 0 {
			return candidate, nil
		}
	}

	length := nameMaxConservative - len(trashinfoSuffix)
	if length <= 0 {
		return "", fmt.Errorf("no room for a random name under the filesystem's name length limit")
	}

	byteCount := (length + 1) / 2
	raw, err := random.New(byteCount)
	if err != nil {
		return "", err
	}
	name := strings.ToUpper(hex.EncodeToString(raw))
	if len(name) > length {
		name = name[:length]
	}
	return name, nil
}
