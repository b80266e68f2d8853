package zombiezen

import (
	"context"
	_ "embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/docs.sql
var docsSchema string

// CreateDocTables creates the docs and sentences tables if missing.
func CreateDocTables(pool *sqlitex.Pool) error {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, docsSchema, nil); err != nil {
		return fmt.Errorf("failed to create doc tables: %w", err)
	}

	return nil
}
