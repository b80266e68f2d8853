package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/revelaction/segtext/input"
	"github.com/revelaction/segtext/storage"
	"github.com/urfave/cli/v2"
)

func importCommand(ui UI) *cli.Command {
	flags := append(annotateFlags(),
		dbFlag(true),
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   "Title of the document (default: the text file name)",
		},
	)

	return &cli.Command{
		Name:      "import",
		Usage:     "Annotate a CoNLL-U file and store it in a repository",
		ArgsUsage: "<text file> <conllu file>",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("import command needs two arguments: <text file> <conllu file>")
			}
			return importDoc(c, ui, c.Args().Get(0), c.Args().Get(1))
		},
	}
}

func importDoc(c *cli.Context, ui UI, textPath, conlluPath string) error {
	var p Pool
	defer p.Close()

	repo, err := NewDocRepository(&p, c.String("db"), true)
	if err != nil {
		return err
	}

	text, err := input.ReadText(textPath)
	if err != nil {
		return err
	}

	doc := storage.Doc{
		Title: c.String("title"),
		Hash:  storage.HashText(text),
	}
	if doc.Title == "" {
		doc.Title = docTitle(textPath)
	}

	if _, err := annotateFiles(c, ui, textPath, conlluPath, &doc); err != nil {
		return err
	}

	id, err := repo.Write(doc)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "📖 %d %s (%d sentences)\n", id, doc.Title, len(doc.Sentences))
	return nil
}

// docTitle derives a title from a file name, dropping the extensions.
func docTitle(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
