package stat

import (
	"github.com/revelaction/segtext/conllu"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences int `json:"sentences"`

	// Surface tokens, the words covered by multiword tokens are not counted
	NumTokens int `json:"tokens"`

	// Tokens marked SpaceAfter=No
	NumNoSpace int `json:"no_space"`

	// Sentences with a `# text =` comment
	NumText int `json:"text"`

	TokensPerSentenceMean int         `json:"tokens_per_sentence"`
	TokensPerSentenceDis  map[int]int `json:"-"`
}

func (h *Handler) Get() Stats {
	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(s conllu.Sentence) {
	h.stats.NumSentences++

	idx := s.SurfaceIndexes()
	h.stats.NumTokens += len(idx)
	h.stats.TokensPerSentenceDis[len(idx)]++

	for _, i := range idx {
		if !s.Tokens[i].SpaceAfter() {
			h.stats.NumNoSpace++
		}
	}

	if _, ok := s.Text(); ok {
		h.stats.NumText++
	}
}
