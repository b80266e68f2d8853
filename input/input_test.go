package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

func TestReadTextPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("Dogs chase cats.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Dogs chase cats.\n" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestReadTextXz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("Compressed text.")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	text, err := ReadText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Compressed text." {
		t.Errorf("unexpected text %q", text)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
