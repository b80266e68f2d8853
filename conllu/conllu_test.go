package conllu

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func row(id, form, misc string) string {
	return strings.Join([]string{id, form, "_", "_", "_", "_", "_", "_", "_", misc}, "\t")
}

func TestReaderSentences(t *testing.T) {
	in := strings.Join([]string{
		"# sent_id = 1",
		row("1", "Dogs", "_"),
		row("2", "bark", "_"),
		"",
		row("1", "Cats", "_"),
		"",
	}, "\n")

	r := NewReader(strings.NewReader(in))

	s, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Comments) != 1 || s.Comments[0] != "# sent_id = 1" {
		t.Errorf("unexpected comments %q", s.Comments)
	}
	if len(s.Tokens) != 2 || s.Tokens[1].Form != "bark" {
		t.Fatalf("unexpected tokens %v", s.Tokens)
	}

	s, err = r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Comments) != 0 || len(s.Tokens) != 1 {
		t.Fatalf("unexpected second sentence %+v", s)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF on exhausted reader, got %v", err)
	}
}

func TestReaderFlushesTrailingGroup(t *testing.T) {
	in := row("1", "Dogs", "_") + "\n" + row("2", "bark", "_")

	r := NewReader(strings.NewReader(in))
	s, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(s.Tokens))
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderSkipsRepeatedBlankLines(t *testing.T) {
	in := "\n \t\n" + row("1", "a", "_") + "\n\n\n" + row("1", "b", "_") + "\n\n"

	r := NewReader(strings.NewReader(in))
	n := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("expected 2 sentences, got %d", n)
	}
}

func TestReaderMalformedRecord(t *testing.T) {
	in := row("1", "Dogs", "_") + "\n1\tbark\n\n"

	r := NewReader(strings.NewReader(in))
	_, err := r.Next()
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}

	var re *RecordError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RecordError, got %T", err)
	}
	if re.Line != 2 || re.Fields != 2 {
		t.Errorf("unexpected record error %+v", re)
	}
}

func TestParseTokenTooManyFields(t *testing.T) {
	_, err := ParseToken(row("1", "a", "_") + "\textra")
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestTokenStringRoundTrip(t *testing.T) {
	line := "3\tcats\tcat\tNOUN\tNNS\tNumber=Plur\t2\tobj\t2:obj\tSpaceAfter=No"
	tk, err := ParseToken(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.String() != line {
		t.Errorf("expected %q, got %q", line, tk.String())
	}
}

func TestSurfaceForms(t *testing.T) {
	s := Sentence{Tokens: []Token{
		{ID: "1-2", Form: "del"},
		{ID: "1", Form: "de"},
		{ID: "2", Form: "el"},
		{ID: "3", Form: "mar"},
		{ID: "3.1", Form: "ghost"},
		{ID: "4", Form: "."},
	}}

	got := strings.Join(s.Forms(), " ")
	if got != "del mar ." {
		t.Errorf("unexpected surface forms %q", got)
	}

	idx := s.SurfaceIndexes()
	if len(idx) != 3 || idx[0] != 0 || idx[1] != 3 || idx[2] != 5 {
		t.Errorf("unexpected surface indexes %v", idx)
	}
}

func TestSetTextIsIdempotent(t *testing.T) {
	s := Sentence{Comments: []string{"# sent_id = 1", "# newpar"}}

	s.SetText("Dogs chase cats.")
	s.SetText("Dogs chase cats.")

	n := 0
	for _, c := range s.Comments {
		if strings.HasPrefix(c, TextPrefix) {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected one text comment, got %d: %q", n, s.Comments)
	}
	if s.Comments[2] != "# text = Dogs chase cats." {
		t.Errorf("expected appended text comment, got %q", s.Comments)
	}
}

func TestSetTextReplacesInPlace(t *testing.T) {
	s := Sentence{Comments: []string{"# sent_id = 1", "# text = old", "# newpar"}}
	s.SetText("new")

	if s.Comments[1] != "# text = new" {
		t.Errorf("expected replacement at position 1, got %q", s.Comments)
	}

	text, ok := s.Text()
	if !ok || text != "new" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestMisc(t *testing.T) {
	tk := Token{Misc: "_"}
	tk.SetSpaceAfter(false)
	if tk.Misc != "SpaceAfter=No" {
		t.Errorf("expected SpaceAfter=No, got %q", tk.Misc)
	}
	if tk.SpaceAfter() {
		t.Errorf("expected no space after")
	}

	tk.SetSpaceAfter(true)
	if tk.Misc != "_" {
		t.Errorf("expected empty misc, got %q", tk.Misc)
	}

	tk = Token{Misc: "Gloss=dog|SpaceAfter=Yes|Translit=x"}
	tk.SetSpaceAfter(false)
	if tk.Misc != "Gloss=dog|SpaceAfter=No|Translit=x" {
		t.Errorf("expected in place replacement, got %q", tk.Misc)
	}

	tk.SetSpaceAfter(true)
	if tk.Misc != "Gloss=dog|Translit=x" {
		t.Errorf("expected SpaceAfter removed, got %q", tk.Misc)
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	s := Sentence{
		Comments: []string{"# text = a"},
		Tokens:   []Token{{ID: "1", Form: "a", Lemma: "_", UPos: "_", XPos: "_", Feats: "_", Head: "_", DepRel: "_", Deps: "_", Misc: "_"}},
	}
	if err := w.Write(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "# text = a\n" + row("1", "a", "_") + "\n\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
