package zombiezen

import (
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// annotation writes a document in one transaction and the browser runs one
// query at a time
const poolSize = 2

// NewPool opens the doc database at dbPath, creating the file if needed.
// Connections use the sqlitex defaults, which enable WAL.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{PoolSize: poolSize})
	if err != nil {
		return nil, fmt.Errorf("open doc database %s: %w", dbPath, err)
	}
	return pool, nil
}
