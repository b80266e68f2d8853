package storage

import (
	"encoding/hex"
	"errors"

	"github.com/revelaction/segtext/conllu"
	"github.com/zeebo/blake3"
)

var (
	// ErrNotFound is returned when a document id does not exist
	ErrNotFound = errors.New("doc not found")

	// ErrDocExists is returned when a document with the same text was
	// already written
	ErrDocExists = errors.New("doc already exists")
)

// Doc is an annotated document.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	// Hash identifies the raw document text, see HashText
	Hash string `json:"hash"`

	Sentences []conllu.Sentence `json:"sentences,omitempty"`
}

// Write appends an annotated sentence, so a Doc can collect the output of
// an annotation run.
func (d *Doc) Write(s conllu.Sentence) error {
	d.Sentences = append(d.Sentences, s)
	return nil
}

// HashText returns the hex encoded BLAKE3 digest of a raw document text.
func HashText(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// SentenceResult is a sentence found in a document.
type SentenceResult struct {
	DocId int

	// Index is the position of the sentence in its document
	Index int

	Sentence conllu.Sentence
}

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Hash) of all documents.
	// Sentences are not loaded.
	List() ([]Doc, error)

	// Read returns a document by ID
	Read(id int) (Doc, error)

	// FindText returns at most limit sentences whose `# text` comment
	// contains substr.
	FindText(substr string, limit int) ([]SentenceResult, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and returns its id
	Write(doc Doc) (int, error)
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
