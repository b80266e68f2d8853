// Package align locates tokenized text in the original document text.
package align

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrTextMismatch is returned when tokens can not be aligned with the text.
var ErrTextMismatch = errors.New("text mismatch")

// MismatchError describes an alignment failure.
type MismatchError struct {
	// Target is the string that was searched for
	Target string

	// Text is the beginning of the text it was searched in
	Text string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %q not prefix of %q[...]", ErrTextMismatch, e.Target, e.Text)
}

func (e *MismatchError) Unwrap() error {
	return ErrTextMismatch
}

func mismatch(text, target string) error {
	return &MismatchError{Target: target, Text: prefix(text, utf8.RuneCountInString(target))}
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// FindIgnoreSpace returns the end (byte offset) of the shortest prefix of
// text that equals target when whitespace is ignored on both sides.
//
// The text cursor advances on every step. The target cursor advances on an
// exact match or when the target itself has whitespace. Any other pair of
// different characters is a mismatch, as is running out of text.
func FindIgnoreSpace(text, target string) (int, error) {
	ti, si := 0, 0
	for ti < len(text) && si < len(target) {
		tr, tw := utf8.DecodeRuneInString(text[ti:])
		sr, sw := utf8.DecodeRuneInString(target[si:])

		// invalid bytes all decode to utf8.RuneError, so compare the encodings
		switch {
		case text[ti:ti+tw] == target[si:si+sw]:
			ti += tw
			si += sw
		case unicode.IsSpace(tr):
			ti += tw
		case unicode.IsSpace(sr):
			si += sw
		default:
			return 0, mismatch(text, target)
		}
	}

	if si != len(target) {
		return 0, mismatch(text, target)
	}

	return ti, nil
}

// Cursor walks the text token by token, checking that each token form is
// an exact prefix of the remaining text.
type Cursor struct {
	rest string
}

// NewCursor returns a Cursor positioned at the first non space character of
// text.
func NewCursor(text string) *Cursor {
	return &Cursor{rest: strings.TrimLeftFunc(text, unicode.IsSpace)}
}

// Consume checks that form starts the remaining text and moves past it.
// spaceAfter is true when the text ends or whitespace follows the form.
func (c *Cursor) Consume(form string) (spaceAfter bool, err error) {
	if !strings.HasPrefix(c.rest, form) {
		return false, mismatch(c.rest, form)
	}

	c.rest = c.rest[len(form):]

	r, _ := utf8.DecodeRuneInString(c.rest)
	spaceAfter = c.rest == "" || unicode.IsSpace(r)

	c.rest = strings.TrimLeftFunc(c.rest, unicode.IsSpace)
	return spaceAfter, nil
}

// Rest returns the text not consumed yet.
func (c *Cursor) Rest() string {
	return c.rest
}
