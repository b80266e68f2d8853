package conllu

import (
	"bufio"
	"io"
)

// Writer writes sentences in CoNLL-U format.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes the comments, the token lines and a terminating blank line.
func (w *Writer) Write(s Sentence) error {
	for _, c := range s.Comments {
		if _, err := w.w.WriteString(c + "\n"); err != nil {
			return err
		}
	}

	for _, t := range s.Tokens {
		if _, err := w.w.WriteString(t.String() + "\n"); err != nil {
			return err
		}
	}

	_, err := w.w.WriteString("\n")
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
