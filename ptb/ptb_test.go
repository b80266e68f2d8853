package ptb

import (
	"testing"

	"github.com/revelaction/segtext/conllu"
)

func TestUnescape(t *testing.T) {
	tests := map[string]string{
		"``":     `"`,
		"''":     `"`,
		"-LRB-":  "(",
		"-rcb-":  "}",
		"dog":    "dog",
		"``dog":  "``dog",
		"'":      "'",
		"-LRB-x": "-LRB-x",
	}

	for in, want := range tests {
		if got := Unescape(in); got != want {
			t.Errorf("Unescape(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestUnescapeToken(t *testing.T) {
	tk := conllu.Token{Form: "``", Lemma: "``", Misc: "_"}
	UnescapeToken(&tk)

	if tk.Form != `"` || tk.Lemma != `"` {
		t.Errorf("unexpected token %+v", tk)
	}
}
