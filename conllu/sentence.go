package conllu

import "strings"

// TextPrefix starts the comment line holding the original text of a
// sentence.
const TextPrefix = "# text ="

// Sentence is a blank line delimited group of token lines, optionally
// preceded by comment lines.
type Sentence struct {
	// Raw comment lines, including the leading `#`
	Comments []string `json:"comments"`

	Tokens []Token `json:"tokens"`
}

// SurfaceIndexes returns the indexes of the tokens whose forms appear in the
// running text, in order. A multiword range line stands for the words it
// covers, and empty nodes have no surface form.
func (s Sentence) SurfaceIndexes() []int {
	idx := make([]int, 0, len(s.Tokens))
	skipUntil := ""
	for i, t := range s.Tokens {
		if t.IsEmptyNode() {
			continue
		}

		if skipUntil != "" {
			if t.ID == skipUntil {
				skipUntil = ""
			}
			continue
		}

		if t.IsMultiword() {
			if _, last, ok := t.Range(); ok {
				skipUntil = last
			}
		}

		idx = append(idx, i)
	}

	return idx
}

// Forms returns the surface forms of the sentence.
func (s Sentence) Forms() []string {
	idx := s.SurfaceIndexes()
	forms := make([]string, len(idx))
	for i, j := range idx {
		forms[i] = s.Tokens[j].Form
	}
	return forms
}

// Text returns the value of the `# text =` comment, if any.
func (s Sentence) Text() (string, bool) {
	for _, c := range s.Comments {
		if strings.HasPrefix(c, TextPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(c, TextPrefix)), true
		}
	}
	return "", false
}

// SetText replaces the first `# text =` comment in place, or appends one
// after the existing comments.
func (s *Sentence) SetText(text string) {
	line := TextLine(text)
	for i, c := range s.Comments {
		if strings.HasPrefix(c, TextPrefix) {
			s.Comments[i] = line
			return
		}
	}
	s.Comments = append(s.Comments, line)
}

// TextLine formats a `# text =` comment.
func TextLine(text string) string {
	return TextPrefix + " " + text
}
