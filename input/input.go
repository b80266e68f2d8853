// Package input opens text and CoNLL-U inputs, decompressing xz files.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// Stdin is the path naming the standard input.
const Stdin = "-"

type readCloser struct {
	io.Reader
	c io.Closer
}

func (r readCloser) Close() error {
	return r.c.Close()
}

// Open opens path for reading. Files with the .xz extension are
// decompressed.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	if filepath.Ext(path) != ".xz" {
		return f, nil
	}

	xr, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("xz decoding error in %s: %w", path, err)
	}

	return readCloser{Reader: xr, c: f}, nil
}

// ReadText reads the whole document at path.
func ReadText(path string) (string, error) {
	rc, err := Open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("IO error: %w", err)
	}

	return string(b), nil
}
