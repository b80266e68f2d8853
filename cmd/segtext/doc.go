package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/segtext/render"
	"github.com/revelaction/segtext/storage"
	"github.com/urfave/cli/v2"
)

func docCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "List stored documents or show one",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			dbFlag(true),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   render.Defaultformat,
				Usage:   "Output format: conllu, text or json",
			},
		},
		Action: func(c *cli.Context) error {
			var p Pool
			defer p.Close()

			repo, err := NewDocRepository(&p, c.String("db"), false)
			if err != nil {
				return err
			}

			if c.NArg() == 0 {
				return listDocs(repo, ui)
			}

			id, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid doc id: %v", err)
			}

			doc, err := repo.Read(id)
			if err != nil {
				return err
			}

			return renderDoc(doc, c.String("format"), ui)
		},
	}
}

func renderDoc(doc storage.Doc, format string, ui UI) error {
	r, err := render.New(format, ui.Out)
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

func listDocs(repo storage.DocReader, ui UI) error {
	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
	}
	return nil
}
