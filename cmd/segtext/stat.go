package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/revelaction/segtext/conllu"
	"github.com/revelaction/segtext/input"
	"github.com/revelaction/segtext/stat"
	"github.com/urfave/cli/v2"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "Show sentence, token and spacing statistics of a CoNLL-U file",
		ArgsUsage: "<conllu file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("stat command needs one argument: <conllu file>")
			}

			rc, err := input.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer rc.Close()

			hdl := stat.NewHandler()
			r := conllu.NewReader(rc)
			for {
				s, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				hdl.Aggregate(s)
			}

			stats := hdl.Get()
			fmt.Fprintf(ui.Out, "Num sentences %d, num tokens %d, num tokens per sentence %d\n", stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)
			fmt.Fprintf(ui.Out, "SpaceAfter=No %d, # text comments %d\n", stats.NumNoSpace, stats.NumText)
			return nil
		},
	}
}
