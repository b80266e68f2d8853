package conllu

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// NumFields is the fixed number of tab separated columns of a token line.
	NumFields = 10

	fieldSeparator = "\t"

	// Empty is the CoNLL-U placeholder for an unset field.
	Empty = "_"
)

// ErrMalformedRecord is returned when a token line does not have exactly
// NumFields columns.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError describes a malformed token line.
type RecordError struct {
	// Line is the 1-based line number in the input, 0 if unknown.
	Line int

	// Fields is the number of columns found.
	Fields int

	Text string
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: expected %d fields, got %d: %q", e.Line, ErrMalformedRecord, NumFields, e.Fields, snippet(e.Text))
	}
	return fmt.Sprintf("%s: expected %d fields, got %d: %q", ErrMalformedRecord, NumFields, e.Fields, snippet(e.Text))
}

func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}

// Token represents a word line of a sentence.
// https://universaldependencies.org/format.html
type Token struct {
	// Word index, a range for multiword tokens (1-2) or a decimal for
	// empty nodes (3.1)
	ID string `json:"id"`

	// The word form or punctuation symbol, as it appears in the text
	Form string `json:"form"`

	Lemma string `json:"lemma"`

	// Universal part-of-speech tag
	UPos string `json:"upos"`

	// Language specific part-of-speech tag
	XPos string `json:"xpos"`

	// Morphological features
	Feats string `json:"feats"`

	// Head of the current word, the ID or 0
	Head string `json:"head"`

	DepRel string `json:"deprel"`

	// Enhanced dependency graph
	Deps string `json:"deps"`

	// Any other annotation, a pipe separated list of Key=Value
	Misc string `json:"misc"`
}

// ParseToken parses a single tab separated token line.
func ParseToken(line string) (Token, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != NumFields {
		return Token{}, &RecordError{Fields: len(fields), Text: line}
	}

	return Token{
		ID:     fields[0],
		Form:   fields[1],
		Lemma:  fields[2],
		UPos:   fields[3],
		XPos:   fields[4],
		Feats:  fields[5],
		Head:   fields[6],
		DepRel: fields[7],
		Deps:   fields[8],
		Misc:   fields[9],
	}, nil
}

func (t Token) String() string {
	return strings.Join([]string{
		t.ID,
		t.Form,
		t.Lemma,
		t.UPos,
		t.XPos,
		t.Feats,
		t.Head,
		t.DepRel,
		t.Deps,
		t.Misc,
	}, fieldSeparator)
}

// IsMultiword reports whether the token is a multiword range line (1-2).
func (t Token) IsMultiword() bool {
	return strings.Contains(t.ID, "-")
}

// IsEmptyNode reports whether the token is an empty node of the enhanced
// representation (3.1).
func (t Token) IsEmptyNode() bool {
	return strings.Contains(t.ID, ".")
}

// Range returns the first and last word ids covered by a multiword token.
func (t Token) Range() (first, last string, ok bool) {
	first, last, ok = strings.Cut(t.ID, "-")
	return first, last, ok
}

func snippet(s string) string {
	const max = 40
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
