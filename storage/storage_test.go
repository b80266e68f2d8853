package storage

import (
	"testing"

	"github.com/revelaction/segtext/conllu"
)

func TestHashText(t *testing.T) {
	a := HashText("Dogs chase cats.")
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a != HashText("Dogs chase cats.") {
		t.Error("expected stable hash")
	}
	if a == HashText("Dogs chase cats!") {
		t.Error("expected different hashes")
	}
}

func TestDocWrite(t *testing.T) {
	var d Doc
	if err := d.Write(conllu.Sentence{Comments: []string{"# text = a"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(d.Sentences))
	}
}
