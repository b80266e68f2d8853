package stat

import (
	"testing"

	"github.com/revelaction/segtext/conllu"
)

func TestAggregate(t *testing.T) {
	h := NewHandler()

	h.Aggregate(conllu.Sentence{
		Comments: []string{"# text = Dogs bark."},
		Tokens: []conllu.Token{
			{ID: "1", Form: "Dogs", Misc: "_"},
			{ID: "2", Form: "bark", Misc: "SpaceAfter=No"},
			{ID: "3", Form: ".", Misc: "_"},
		},
	})
	h.Aggregate(conllu.Sentence{
		Tokens: []conllu.Token{
			{ID: "1", Form: "Hi", Misc: "_"},
		},
	})

	stats := h.Get()
	if stats.NumSentences != 2 {
		t.Errorf("expected 2 sentences, got %d", stats.NumSentences)
	}
	if stats.NumTokens != 4 {
		t.Errorf("expected 4 tokens, got %d", stats.NumTokens)
	}
	if stats.NumNoSpace != 1 {
		t.Errorf("expected 1 no space token, got %d", stats.NumNoSpace)
	}
	if stats.NumText != 1 {
		t.Errorf("expected 1 text comment, got %d", stats.NumText)
	}
	if stats.TokensPerSentenceMean != 2 {
		t.Errorf("expected mean 2, got %d", stats.TokensPerSentenceMean)
	}
	if stats.TokensPerSentenceDis[3] != 1 || stats.TokensPerSentenceDis[1] != 1 {
		t.Errorf("unexpected distribution %v", stats.TokensPerSentenceDis)
	}
}

func TestGetEmpty(t *testing.T) {
	stats := NewHandler().Get()
	if stats.NumSentences != 0 || stats.TokensPerSentenceMean != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
