package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/segtext/conllu"
)

const Defaultformat = "conllu"

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

func SupportedFormats() []string {
	return []string{"conllu", "text", "json"}
}

// Renderer writes annotated sentences in one of the supported formats.
type Renderer interface {
	Write(conllu.Sentence) error
	Flush() error
}

// New returns the Renderer for format, writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "conllu":
		return conllu.NewWriter(w), nil
	case "json":
		return NewJSONRenderer(w), nil
	case "text":
		return NewTextRenderer(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, allowed values are %s", format, strings.Join(SupportedFormats(), ", "))
}

// TextRenderer writes one line per sentence, the text rebuilt from the
// token forms and their SpaceAfter entries.
type TextRenderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	// number of sentences written
	n int
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w, HasPrefix: true}
}

func (r *TextRenderer) Write(s conllu.Sentence) error {
	prefix := ""
	if r.HasPrefix {
		prefix = fmt.Sprintf("✍  %d ", r.n)
	}
	r.n++

	_, err := fmt.Fprintf(r.W, "%s%s\n", prefix, r.Sentence(s))
	return err
}

func (r *TextRenderer) Flush() error {
	return nil
}

// Sentence rebuilds the text of s. Tokens glued to the next one are
// highlighted when HasColor is set.
func (r *TextRenderer) Sentence(s conllu.Sentence) string {
	var str strings.Builder
	idx := s.SurfaceIndexes()
	for n, i := range idx {
		t := s.Tokens[i]
		spaceAfter := t.SpaceAfter()

		if r.HasColor && !spaceAfter {
			str.WriteString(Green256 + t.Form + Off)
		} else {
			str.WriteString(t.Form)
		}

		if spaceAfter && n < len(idx)-1 {
			str.WriteString(" ")
		}
	}

	return str.String()
}

// Detokenize rebuilds the text of s without colors.
func Detokenize(s conllu.Sentence) string {
	r := TextRenderer{}
	return r.Sentence(s)
}

// NextFormat returns the format following current in SupportedFormats()
// order.
func NextFormat(current string) string {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == current {
			if i == len(supported)-1 {
				return supported[0]
			}
			return supported[i+1]
		}
	}
	return Defaultformat
}

var (
	_ Renderer = (*conllu.Writer)(nil)
	_ Renderer = (*TextRenderer)(nil)
)
