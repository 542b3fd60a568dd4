// +build linux freebsd netbsd openbsd dragonfly

package trash

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

func TestEscapePath(t *testing.T) {
	cases := map[string]string{
		"/h/notes.txt":    "/h/notes.txt",
		"/h/a b%c.txt":    "/h/a%20b%25c.txt",
		"/h/caf\xc3\xa9":  "/h/caf%C3%A9",
	}
	for input, expected := range cases {
		if got := escapePath(input); got != expected {
			t.Errorf("escapePath(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestEscapePathRoundTrip(t *testing.T) {
	// P4: percent-unescaping the Path= line must recover the canonical
	// source path exactly.
	original := "/h/a b%c.txt"
	escaped := escapePath(original)
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		t.Fatal("unable to unescape:", err)
	}
	if unescaped != original {
		t.Errorf("round trip mismatch: %q != %q", unescaped, original)
	}
}

func TestBaseName(t *testing.T) {
	if name, ok := baseName("/h/notes.txt"); !ok || name != "notes.txt" {
		t.Errorf("baseName(/h/notes.txt) = %q, %v", name, ok)
	}
	if _, ok := baseName("/"); ok {
		t.Error("baseName(/) unexpectedly succeeded")
	}
}

func TestMkdirRecursive(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "c")
	if err := mkdirRecursive(target, 0700); err != nil {
		t.Fatal("mkdirRecursive failed:", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatal("unable to stat created directory:", err)
	}
	if !info.IsDir() {
		t.Error("created path is not a directory")
	}
	// Existing directories are not an error.
	if err := mkdirRecursive(target, 0700); err != nil {
		t.Error("mkdirRecursive on existing directory failed:", err)
	}
}

func TestCanonicalize(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(target, []byte("x"), 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	canonical, err := canonicalize(target)
	if err != nil {
		t.Fatal("canonicalize failed:", err)
	}
	if filepath.Base(canonical) != "file.txt" {
		t.Errorf("canonicalize changed basename: %q", canonical)
	}
}
