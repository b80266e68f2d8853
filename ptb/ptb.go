// Package ptb reverts the Penn Treebank escapes of punctuation.
package ptb

import "github.com/revelaction/segtext/conllu"

var unescape = map[string]string{
	"``":    `"`,
	"''":    `"`,
	"-LRB-": "(",
	"-RRB-": ")",
	"-LSB-": "[",
	"-RSB-": "]",
	"-LCB-": "{",
	"-RCB-": "}",
	"-lrb-": "(",
	"-rrb-": ")",
	"-lsb-": "[",
	"-rsb-": "]",
	"-lcb-": "{",
	"-rcb-": "}",
}

// Unescape returns the original string for a PTB escape, or s unchanged.
func Unescape(s string) string {
	if u, ok := unescape[s]; ok {
		return u
	}
	return s
}

// UnescapeToken unescapes the form and lemma of t.
func UnescapeToken(t *conllu.Token) {
	t.Form = Unescape(t.Form)
	t.Lemma = Unescape(t.Lemma)
}
