// Package browse is an interactive browser of stored annotated documents.
package browse

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/segtext/render"
	"github.com/revelaction/segtext/storage"
)

const findLimit = 50

var commands = []prompt.Suggest{
	{Text: "docs", Description: "List documents"},
	{Text: "doc", Description: "Show a document: doc <id>"},
	{Text: "sent", Description: "Show a sentence: sent <id> <n>"},
	{Text: "find", Description: "Find sentences by text: find <words>"},
	{Text: "quit", Description: "Exit"},
}

type Handler struct {
	DocRepo storage.DocReader
	Out     io.Writer

	// Format is the output format of doc and sent, one of render.SupportedFormats()
	Format string
}

func NewHandler(dr storage.DocReader, out io.Writer) *Handler {
	return &Handler{
		DocRepo: dr,
		Out:     out,
		Format:  "text",
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+F: next Format, 🔧 quit")

	docs, err := h.DocRepo.List()
	if err != nil {
		return err
	}

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      📖 ", h.completer(docs),
			prompt.OptionTitle("segtext browse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Format = render.NextFormat(h.Format)
					fmt.Fprintln(h.Out, "Format set to: "+h.Format)
				}}),
		)

		history = append(history, in)

		quit, err := h.Execute(in)
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintf(h.Out, "✍  %v\n", err)
		}
	}
}

// Execute runs a single browser command line.
func (h *Handler) Execute(in string) (quit bool, err error) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil

	case "docs":
		docs, err := h.DocRepo.List()
		if err != nil {
			return false, err
		}
		for _, doc := range docs {
			fmt.Fprintf(h.Out, "📖 %d %s\n", doc.Id, doc.Title)
		}
		return false, nil

	case "doc":
		if len(fields) != 2 {
			return false, errors.New("usage: doc <id>")
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("invalid doc id: %v", err)
		}
		doc, err := h.DocRepo.Read(id)
		if err != nil {
			return false, err
		}
		return false, h.render(doc)

	case "sent":
		if len(fields) != 3 {
			return false, errors.New("usage: sent <id> <n>")
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("invalid doc id: %v", err)
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return false, fmt.Errorf("invalid sentence index: %v", err)
		}
		doc, err := h.DocRepo.Read(id)
		if err != nil {
			return false, err
		}
		if n < 0 || n >= len(doc.Sentences) {
			return false, fmt.Errorf("sentence index %d out of bounds (0-%d)", n, len(doc.Sentences)-1)
		}
		doc.Sentences = doc.Sentences[n : n+1]
		return false, h.render(doc)

	case "find":
		if len(fields) < 2 {
			return false, errors.New("usage: find <words>")
		}
		substr := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(in), "find"))
		results, err := h.DocRepo.FindText(substr, findLimit)
		if err != nil {
			return false, err
		}
		for _, res := range results {
			text, _ := res.Sentence.Text()
			fmt.Fprintf(h.Out, "✍  %d-%d %s\n", res.DocId, res.Index, text)
		}
		return false, nil
	}

	return false, fmt.Errorf("unknown command: %s", fields[0])
}

func (h *Handler) render(doc storage.Doc) error {
	r, err := render.New(h.Format, h.Out)
	if err != nil {
		return err
	}

	for _, s := range doc.Sentences {
		if err := r.Write(s); err != nil {
			return err
		}
	}

	return r.Flush()
}

func (h *Handler) completer(docs []storage.Doc) prompt.Completer {
	return func(in prompt.Document) []prompt.Suggest {
		fields := strings.Fields(in.TextBeforeCursor())
		word := in.GetWordBeforeCursor()

		// the command itself
		if len(fields) == 0 || (len(fields) == 1 && word != "") {
			return prompt.FilterHasPrefix(commands, word, true)
		}

		switch fields[0] {
		case "doc", "sent":
			// first argument: the doc id
			if len(fields) > 2 || (len(fields) == 2 && word == "") {
				return nil
			}
			s := []prompt.Suggest{}
			for _, d := range docs {
				s = append(s, prompt.Suggest{Text: strconv.Itoa(d.Id), Description: "📖 " + d.Title})
			}
			return prompt.FilterHasPrefix(s, word, true)
		}

		return nil
	}
}
