package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revelaction/segtext/conllu"
	"github.com/revelaction/segtext/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List() ([]storage.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []storage.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, hash FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, storage.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
				Hash:  stmt.ColumnText(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (storage.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := storage.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, hash FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			doc.Hash = stmt.ColumnText(1)
			return nil
		},
	})
	if err != nil {
		return storage.Doc{}, err
	}
	if !found {
		return storage.Doc{}, fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY idx", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s conllu.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return err
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return storage.Doc{}, err
	}

	return doc, nil
}

func (h *DocStore) FindText(substr string, limit int) ([]storage.SentenceResult, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	// instr avoids escaping the LIKE wildcards of substr
	query := "SELECT doc_id, idx, data FROM sentences WHERE instr(text, ?) > 0 ORDER BY doc_id, idx"
	args := []interface{}{substr}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var results []storage.SentenceResult
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			res := storage.SentenceResult{
				DocId: stmt.ColumnInt(0),
				Index: stmt.ColumnInt(1),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &res.Sentence); err != nil {
				return err
			}
			results = append(results, res)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Write inserts the document and its sentences in a single transaction.
func (h *DocStore) Write(doc storage.Doc) (id int, err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	exists := false
	err = sqlitex.Execute(conn, "SELECT id FROM docs WHERE hash = ?", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Hash},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			exists = true
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: %s (%s)", storage.ErrDocExists, doc.Title, doc.Hash)
	}

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, hash) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, doc.Hash},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for i, s := range doc.Sentences {
		data, err := json.Marshal(s)
		if err != nil {
			return 0, err
		}

		text, _ := s.Text()
		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, idx, text, data) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, i, text, string(data)},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert sentence %d: %w", i, err)
		}
	}

	return int(docID), nil
}
