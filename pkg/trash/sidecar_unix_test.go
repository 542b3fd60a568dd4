// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteSidecarCreatesFile(t *testing.T) {
	dir := t.TempDir()
	infoPath := filepath.Join(dir, "stem.trashinfo")
	deletionTime := time.Date(2024, 3, 5, 12, 30, 0, 0, time.Local)

	collision, err := writeSidecar(infoPath, "/h/notes.txt", deletionTime, nil)
	if err != nil {
		t.Fatal("writeSidecar failed:", err)
	}
	if collision {
		t.Fatal("writeSidecar reported a collision on a fresh path")
	}

	data, err := os.ReadFile(infoPath)
	if err != nil {
		t.Fatal("unable to read sidecar:", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "[Trash Info]\n") {
		t.Errorf("sidecar missing header: %q", content)
	}
	if !strings.Contains(content, "Path=/h/notes.txt\n") {
		t.Errorf("sidecar missing Path= line: %q", content)
	}
	if !strings.Contains(content, "DeletionDate=2024-03-05T12:30:00\n") {
		t.Errorf("sidecar missing DeletionDate= line: %q", content)
	}
}

func TestWriteSidecarCollision(t *testing.T) {
	dir := t.TempDir()
	infoPath := filepath.Join(dir, "stem.trashinfo")
	deletionTime := time.Now()

	if _, err := writeSidecar(infoPath, "/h/notes.txt", deletionTime, nil); err != nil {
		t.Fatal("first writeSidecar failed:", err)
	}

	collision, err := writeSidecar(infoPath, "/h/other.txt", deletionTime, nil)
	if err != nil {
		t.Fatal("second writeSidecar returned an unexpected error:", err)
	}
	if !collision {
		t.Fatal("writeSidecar did not report a collision for an existing path")
	}

	// The original content must be untouched by the losing attempt.
	data, err := os.ReadFile(infoPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Path=/h/notes.txt\n") {
		t.Error("collision attempt overwrote the original sidecar")
	}
}

func TestSidecarContentDeterministic(t *testing.T) {
	// P5: the sidecar format is a deterministic function of (canonical
	// path, deletion time).
	deletionTime := time.Date(2024, 3, 5, 12, 30, 0, 0, time.Local)
	first := sidecarContent("/h/a.txt", deletionTime)
	second := sidecarContent("/h/a.txt", deletionTime)
	if first != second {
		t.Errorf("sidecarContent not deterministic: %q != %q", first, second)
	}
}
