// Package annotate adds the original text and the token spacing of a
// document to its CoNLL-U annotation.
//
// Each sentence is located in the document with a whitespace insensitive
// match of its token forms. The document is consumed from the front, so
// sentences must come in document order.
package annotate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/revelaction/segtext/align"
	"github.com/revelaction/segtext/conllu"
	"github.com/revelaction/segtext/ptb"
	"github.com/revelaction/segtext/stat"
)

// ErrUnconsumedText signals document text left over after the last
// sentence. The Annotator only logs it; callers decide whether it fails a
// run.
var ErrUnconsumedText = errors.New("unconsumed text")

// Options selects the annotation features.
type Options struct {
	// EmitSpacing updates the SpaceAfter entry of the misc column
	EmitSpacing bool

	// UnescapePTB reverts PTB escapes in forms and lemmas before matching
	UnescapePTB bool

	// MergeComment replaces an existing `# text =` comment instead of
	// adding a new one
	MergeComment bool

	// JoinSeparator is put between token forms to build the match target
	JoinSeparator string

	// OnProgress, if set, is called after each sentence with the number of
	// bytes of the document consumed so far.
	OnProgress func(consumed, total int)
}

// Basic only adds a `# text =` comment to each sentence. The comment text
// is still put on a single line and stripped, so the output stays valid
// CoNLL-U when a sentence spans lines of the document.
func Basic() Options {
	return Options{}
}

// Extended merges the `# text =` comment and computes the token spacing.
func Extended() Options {
	return Options{
		EmitSpacing:   true,
		MergeComment:  true,
		JoinSeparator: " ",
	}
}

// Sink receives the annotated sentences.
type Sink interface {
	Write(conllu.Sentence) error
}

// Result summarizes a Run.
type Result struct {
	Stats stat.Stats

	// Leftover is the stripped document text not matched by any sentence
	Leftover string
}

type Annotator struct {
	opts   Options
	logger *slog.Logger
	stats  *stat.Handler

	// the document text not consumed yet
	text  string
	total int

	// number of sentences seen
	n int
}

// New returns an Annotator for the document text. A nil logger discards
// diagnostics.
func New(text string, opts Options, logger *slog.Logger) *Annotator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Annotator{
		opts:   opts,
		logger: logger,
		stats:  stat.NewHandler(),
		text:   text,
		total:  len(text),
	}
}

// Annotate aligns s with the beginning of the remaining document text,
// updates its comments and tokens in place and consumes the matched text.
func (a *Annotator) Annotate(s *conllu.Sentence) error {
	a.n++

	if a.opts.UnescapePTB {
		for i := range s.Tokens {
			ptb.UnescapeToken(&s.Tokens[i])
		}
	}

	idx := s.SurfaceIndexes()
	forms := make([]string, len(idx))
	for i, j := range idx {
		forms[i] = s.Tokens[j].Form
	}

	end, err := align.FindIgnoreSpace(a.text, strings.Join(forms, a.opts.JoinSeparator))
	if err != nil {
		return fmt.Errorf("sentence %d: %w", a.n, err)
	}

	text := displayText(a.text[:end])
	if a.opts.MergeComment {
		s.SetText(text)
	} else {
		s.Comments = append(s.Comments, conllu.TextLine(text))
	}

	if a.opts.EmitSpacing {
		if err := a.spacing(s, idx); err != nil {
			return err
		}
	}

	a.text = a.text[end:]

	a.logger.Debug("sentence aligned", "sentence", a.n, "tokens", len(idx), "bytes", end)
	return nil
}

// spacing uses the whole remaining text, so the last token of a sentence
// sees the beginning of the next one.
func (a *Annotator) spacing(s *conllu.Sentence, idx []int) error {
	c := align.NewCursor(a.text)
	for _, i := range idx {
		t := &s.Tokens[i]
		spaceAfter, err := c.Consume(t.Form)
		if err != nil {
			return fmt.Errorf("sentence %d, token %s: %w", a.n, t.ID, err)
		}
		t.SetSpaceAfter(spaceAfter)
	}
	return nil
}

// displayText puts a matched span on a single line.
func displayText(span string) string {
	r := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	return strings.TrimSpace(r.Replace(span))
}

// Leftover returns the stripped document text not consumed yet.
func (a *Annotator) Leftover() string {
	return strings.TrimSpace(a.text)
}

// Run annotates every sentence of r in order and writes it to out. It stops
// at the first error. Unconsumed document text at the end is logged, not
// returned as an error.
func (a *Annotator) Run(r *conllu.Reader, out Sink) (Result, error) {
	for {
		s, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, err
		}

		if err := a.Annotate(&s); err != nil {
			return Result{}, err
		}

		a.stats.Aggregate(s)

		if err := out.Write(s); err != nil {
			return Result{}, err
		}

		if a.opts.OnProgress != nil {
			a.opts.OnProgress(a.total-len(a.text), a.total)
		}
	}

	res := Result{Stats: a.stats.Get(), Leftover: a.Leftover()}
	if res.Leftover != "" {
		a.logger.Error(ErrUnconsumedText.Error(), "text", res.Leftover)
	}

	return res, nil
}
