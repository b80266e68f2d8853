package browse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/segtext/conllu"
	"github.com/revelaction/segtext/storage"
)

// memRepo is an in memory storage.DocReader
type memRepo struct {
	docs []storage.Doc
}

func (m *memRepo) List() ([]storage.Doc, error) {
	var docs []storage.Doc
	for _, d := range m.docs {
		docs = append(docs, storage.Doc{Id: d.Id, Title: d.Title, Hash: d.Hash})
	}
	return docs, nil
}

func (m *memRepo) Read(id int) (storage.Doc, error) {
	for _, d := range m.docs {
		if d.Id == id {
			return d, nil
		}
	}
	return storage.Doc{}, storage.ErrNotFound
}

func (m *memRepo) FindText(substr string, limit int) ([]storage.SentenceResult, error) {
	var res []storage.SentenceResult
	for _, d := range m.docs {
		for i, s := range d.Sentences {
			if text, _ := s.Text(); strings.Contains(text, substr) {
				res = append(res, storage.SentenceResult{DocId: d.Id, Index: i, Sentence: s})
			}
		}
	}
	return res, nil
}

func newHandler() (*Handler, *bytes.Buffer) {
	repo := &memRepo{docs: []storage.Doc{{
		Id:    0,
		Title: "animals",
		Sentences: []conllu.Sentence{
			{
				Comments: []string{"# text = Dogs bark."},
				Tokens: []conllu.Token{
					{ID: "1", Form: "Dogs", Misc: "_"},
					{ID: "2", Form: "bark", Misc: "SpaceAfter=No"},
					{ID: "3", Form: ".", Misc: "_"},
				},
			},
			{
				Comments: []string{"# text = Cats sleep"},
				Tokens: []conllu.Token{
					{ID: "1", Form: "Cats", Misc: "_"},
					{ID: "2", Form: "sleep", Misc: "_"},
				},
			},
		},
	}}}

	var buf bytes.Buffer
	return NewHandler(repo, &buf), &buf
}

func TestExecuteDocs(t *testing.T) {
	h, buf := newHandler()
	if _, err := h.Execute("docs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "📖 0 animals\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestExecuteSent(t *testing.T) {
	h, buf := newHandler()
	if _, err := h.Execute("sent 0 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "✍  0 Cats sleep\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	if _, err := h.Execute("sent 0 5"); err == nil {
		t.Error("expected out of bounds error")
	}
}

func TestExecuteFind(t *testing.T) {
	h, buf := newHandler()
	if _, err := h.Execute("find Dogs bark"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "✍  0-0 Dogs bark.\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestExecuteDocConllu(t *testing.T) {
	h, buf := newHandler()
	h.Format = "conllu"
	if _, err := h.Execute("doc 0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# text = Dogs bark.\n1\tDogs") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestExecuteQuitAndUnknown(t *testing.T) {
	h, _ := newHandler()

	quit, err := h.Execute("quit")
	if !quit || err != nil {
		t.Errorf("expected quit, got %t %v", quit, err)
	}

	if _, err := h.Execute("jump"); err == nil {
		t.Error("expected unknown command error")
	}

	if _, err := h.Execute("doc 9"); err == nil {
		t.Error("expected not found error")
	}
}
