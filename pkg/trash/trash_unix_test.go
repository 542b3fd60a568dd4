// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
)

// withHome runs fn with HOME set to a fresh temporary directory and
// XDG_DATA_HOME unset, restoring the previous environment afterward. This
// isolates each test's home trash from both the real one and from other
// tests running in the same process.
func withHome(t *testing.T, fn func(home string)) {
	t.Helper()
	home := t.TempDir()

	previousHome, hadHome := os.LookupEnv("HOME")
	previousData, hadData := os.LookupEnv("XDG_DATA_HOME")
	os.Setenv("HOME", home)
	os.Unsetenv("XDG_DATA_HOME")
	defer func() {
		if hadHome {
			os.Setenv("HOME", previousHome)
		} else {
			os.Unsetenv("HOME")
		}
		if hadData {
			os.Setenv("XDG_DATA_HOME", previousData)
		} else {
			os.Unsetenv("XDG_DATA_HOME")
		}
	}()

	fn(home)
}

func TestMoveHomeTrash(t *testing.T) {
	withHome(t, func(home string) {
		source := filepath.Join(home, "notes.txt")
		if err := os.WriteFile(source, []byte("hello"), 0600); err != nil {
			t.Fatal(err)
		}

		if err := Move(source); err != nil {
			t.Fatal("Move failed:", err)
		}

		// P2: the original path no longer exists.
		if _, err := os.Lstat(source); !os.IsNotExist(err) {
			t.Error("source still exists after Move")
		}

		root := newRoot(RootHome, filepath.Join(home, ".local/share/Trash"))

		// P1: both the entry and its sidecar exist under the chosen stem.
		matches, err := filepath.Glob(filepath.Join(root.FilesDir, "notes.txt*"))
		if err != nil || len(matches) != 1 {
			t.Fatalf("expected exactly one trashed entry, got %v (err=%v)", matches, err)
		}
		stem := filepath.Base(matches[0])
		if _, err := os.Stat(filepath.Join(root.InfoDir, stem+trashinfoSuffix)); err != nil {
			t.Errorf("sidecar missing for stem %q: %v", stem, err)
		}
	})
}

func TestMoveNonExistentSource(t *testing.T) {
	withHome(t, func(home string) {
		err := Move(filepath.Join(home, "does-not-exist"))
		if err == nil {
			t.Fatal("Move succeeded for a non-existent source")
		}
		taxonomised, ok := err.(*Error)
		if !ok {
			t.Fatalf("error is not a *trash.Error: %v", err)
		}
		if taxonomised.Status() != RealPathFailed {
			t.Errorf("status = %v, want RealPathFailed", taxonomised.Status())
		}
	})
}

func TestMoveCollidingBasenames(t *testing.T) {
	// P7: concurrent calls moving different sources with colliding
	// basenames all succeed with distinct stems.
	withHome(t, func(home string) {
		const count = 8
		sources := make([]string, count)
		for i := range sources {
			dir := filepath.Join(home, "d", strconv.Itoa(i))
			if err := os.MkdirAll(dir, 0700); err != nil {
				t.Fatal(err)
			}
			path := filepath.Join(dir, "a.txt")
			if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
				t.Fatal(err)
			}
			sources[i] = path
		}

		var wg sync.WaitGroup
		errs := make([]error, count)
		for i, source := range sources {
			wg.Add(1)
			go func(i int, source string) {
				defer wg.Done()
				errs[i] = Move(source)
			}(i, source)
		}
		wg.Wait()

		for i, err := range errs {
			if err != nil {
				t.Errorf("Move(%d) failed: %v", i, err)
			}
		}

		root := newRoot(RootHome, filepath.Join(home, ".local/share/Trash"))
		matches, err := filepath.Glob(filepath.Join(root.FilesDir, "a.txt*"))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != count {
			t.Errorf("expected %d distinct trashed entries, got %d: %v", count, len(matches), matches)
		}
	})
}
