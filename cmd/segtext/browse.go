package main

import (
	"github.com/revelaction/segtext/browse"
	"github.com/urfave/cli/v2"
)

func browseCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Enter interactive browse mode",
		Flags: []cli.Flag{dbFlag(true)},
		Action: func(c *cli.Context) error {
			var p Pool
			defer p.Close()

			repo, err := NewDocRepository(&p, c.String("db"), false)
			if err != nil {
				return err
			}

			return browse.NewHandler(repo, ui.Out).Run()
		},
	}
}
