package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/segtext/conllu"
)

// SentenceJSON is the JSON form of an annotated sentence.
type SentenceJSON struct {
	Id       int            `json:"id"`
	Text     string         `json:"text"`
	Comments []string       `json:"comments,omitempty"`
	Tokens   []conllu.Token `json:"tokens"`
}

// JSONRenderer writes one JSON object per sentence to a writer.
type JSONRenderer struct {
	enc *json.Encoder
	n   int
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Write(s conllu.Sentence) error {
	text, _ := s.Text()
	sj := SentenceJSON{
		Id:       r.n,
		Text:     text,
		Comments: s.Comments,
		Tokens:   s.Tokens,
	}
	r.n++
	return r.enc.Encode(sj)
}

func (r *JSONRenderer) Flush() error {
	return nil
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
