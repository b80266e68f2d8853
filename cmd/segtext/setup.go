package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/segtext/storage"
	"github.com/revelaction/segtext/storage/filesystem"
	"github.com/revelaction/segtext/storage/sqlite/zombiezen"
)

// isSQLitePath reports whether a repository path that does not exist yet
// names a SQLite file.
func isSQLitePath(path string) bool {
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// NewDocRepository opens the repository at path: a directory of CoNLL-U
// files or a SQLite file. With create, a missing repository is created.
func NewDocRepository(p *Pool, path string, create bool) (storage.DocRepository, error) {
	isDir := false
	info, err := os.Stat(path)
	switch {
	case err == nil:
		isDir = info.IsDir()
	case create:
		isDir = !isSQLitePath(path)
	default:
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if isDir {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateDocTables(pool); err != nil {
		return nil, fmt.Errorf("failed to create docs table: %w", err)
	}

	return zombiezen.NewDocStore(pool), nil
}
