package locate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestFindEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")

	_, err := Find(dir)
	if !errors.Is(err, ErrNoResume) {
		t.Fatalf("expected ErrNoResume, got %v", err)
	}
}

func TestFindSingleMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "resume.pdf")

	got, err := Find(dir)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != filepath.Join(dir, "resume.pdf") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestFindPrefersLexicographicFirst(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.docx")
	touch(t, dir, "a.pdf")

	got, err := Find(dir)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != filepath.Join(dir, "a.pdf") {
		t.Fatalf("expected a.pdf first, got %q", got)
	}
}

func TestFindIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "archive.pdf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	touch(t, dir, "resume.docx")

	got, err := Find(dir)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != filepath.Join(dir, "resume.docx") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestSupported(t *testing.T) {
	cases := map[string]bool{
		"resume.pdf":  true,
		"resume.DOCX": true,
		"resume.txt":  false,
		"resume":      false,
	}
	for name, want := range cases {
		if got := Supported(name); got != want {
			t.Fatalf("Supported(%q) = %v, want %v", name, got, want)
		}
	}
}
