package conllu

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const maxLineSize = 1024 * 1024

// Reader reads sentences from a CoNLL-U stream, one at a time.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	done    bool
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: sc}
}

// Line returns the number of lines read so far.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next sentence. It returns io.EOF when the stream is
// exhausted. A last group not terminated by a blank line is still returned.
// Any other error is final: the Reader is not restartable.
func (r *Reader) Next() (Sentence, error) {
	if r.done {
		return Sentence{}, io.EOF
	}

	var s Sentence
	for r.scanner.Scan() {
		r.line++
		l := strings.TrimRight(r.scanner.Text(), "\r")

		if strings.TrimSpace(l) == "" {
			if len(s.Comments) == 0 && len(s.Tokens) == 0 {
				continue
			}
			return s, nil
		}

		if strings.HasPrefix(l, "#") {
			s.Comments = append(s.Comments, l)
			continue
		}

		t, err := ParseToken(l)
		if err != nil {
			var re *RecordError
			if errors.As(err, &re) {
				re.Line = r.line
			}
			r.done = true
			return Sentence{}, err
		}
		s.Tokens = append(s.Tokens, t)
	}

	r.done = true
	if err := r.scanner.Err(); err != nil {
		return Sentence{}, err
	}

	if len(s.Comments) == 0 && len(s.Tokens) == 0 {
		return Sentence{}, io.EOF
	}

	return s, nil
}
