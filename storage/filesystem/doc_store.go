package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/segtext/conllu"
	"github.com/revelaction/segtext/storage"
)

const (
	ext = ".conllu"

	titlePrefix = "# segtext_title = "
	hashPrefix  = "# segtext_hash = "
)

// DocStore keeps each document as a CoNLL-U file in a directory. The title
// and hash are stored as comments of the first sentence.
type DocStore struct {
	docDir string
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store, creating docDir if
// needed.
func NewDocStore(docDir string) (*DocStore, error) {
	if err := os.MkdirAll(docDir, 0755); err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	return &DocStore{docDir: docDir}, nil
}

// names returns the document file names, sorted. The position of a name is
// the document id.
func (h *DocStore) names() ([]string, error) {
	files, err := os.ReadDir(h.docDir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if filepath.Ext(file.Name()) == ext {
			names = append(names, file.Name())
		}
	}

	return names, nil
}

func (h *DocStore) List() ([]storage.Doc, error) {
	names, err := h.names()
	if err != nil {
		return nil, err
	}

	docs := make([]storage.Doc, 0, len(names))
	for i, name := range names {
		doc, err := h.readFile(name, true)
		if err != nil {
			return nil, err
		}
		doc.Id = i
		docs = append(docs, doc)
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (storage.Doc, error) {
	names, err := h.names()
	if err != nil {
		return storage.Doc{}, err
	}

	if id < 0 || id >= len(names) {
		return storage.Doc{}, fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}

	doc, err := h.readFile(names[id], false)
	if err != nil {
		return storage.Doc{}, err
	}
	doc.Id = id
	return doc, nil
}

// readFile reads a document file. With headerOnly, only the first sentence
// is parsed and no sentences are returned.
func (h *DocStore) readFile(name string, headerOnly bool) (storage.Doc, error) {
	f, err := os.Open(filepath.Join(h.docDir, name))
	if err != nil {
		return storage.Doc{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	doc := storage.Doc{Title: strings.TrimSuffix(name, ext)}

	r := conllu.NewReader(f)
	for {
		s, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return storage.Doc{}, fmt.Errorf("%s: %w", name, err)
		}

		if len(doc.Sentences) == 0 {
			s.Comments = readHeader(&doc, s.Comments)
		}

		if headerOnly {
			return doc, nil
		}

		doc.Sentences = append(doc.Sentences, s)
	}

	return doc, nil
}

// readHeader fills the title and hash of doc from the leading header
// comments written by Write and returns the remaining comments.
func readHeader(doc *storage.Doc, comments []string) []string {
	i := 0
	for ; i < len(comments); i++ {
		c := comments[i]
		switch {
		case strings.HasPrefix(c, titlePrefix):
			doc.Title = strings.TrimPrefix(c, titlePrefix)
		case strings.HasPrefix(c, hashPrefix):
			doc.Hash = strings.TrimPrefix(c, hashPrefix)
		default:
			return comments[i:]
		}
	}
	return []string{}
}

func (h *DocStore) FindText(substr string, limit int) ([]storage.SentenceResult, error) {
	names, err := h.names()
	if err != nil {
		return nil, err
	}

	var results []storage.SentenceResult
	for id, name := range names {
		doc, err := h.readFile(name, false)
		if err != nil {
			return nil, err
		}

		for i, s := range doc.Sentences {
			text, ok := s.Text()
			if !ok || !strings.Contains(text, substr) {
				continue
			}

			results = append(results, storage.SentenceResult{DocId: id, Index: i, Sentence: s})
			if limit > 0 && len(results) >= limit {
				return results, nil
			}
		}
	}

	return results, nil
}

// Write stores doc as <title>.conllu. Titles must be valid file names.
func (h *DocStore) Write(doc storage.Doc) (id int, err error) {
	if doc.Title == "" || strings.ContainsRune(doc.Title, filepath.Separator) {
		return 0, fmt.Errorf("invalid doc title: %q", doc.Title)
	}

	docs, err := h.List()
	if err != nil {
		return 0, err
	}
	for _, d := range docs {
		if d.Hash != "" && d.Hash == doc.Hash {
			return 0, fmt.Errorf("%w: %s (%s)", storage.ErrDocExists, d.Title, d.Hash)
		}
		if d.Title == doc.Title {
			return 0, fmt.Errorf("%w: title %s", storage.ErrDocExists, d.Title)
		}
	}

	path := filepath.Join(h.docDir, doc.Title+ext)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, fmt.Errorf("IO error: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	w := conllu.NewWriter(f)
	for i, s := range doc.Sentences {
		if i == 0 {
			header := []string{titlePrefix + doc.Title, hashPrefix + doc.Hash}
			s.Comments = append(header, s.Comments...)
		}
		if err := w.Write(s); err != nil {
			return 0, err
		}
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}

	names, err := h.names()
	if err != nil {
		return 0, err
	}
	for i, name := range names {
		if name == doc.Title+ext {
			return i, nil
		}
	}

	return 0, errors.New("written doc not listed")
}
