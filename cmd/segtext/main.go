package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/revelaction/segtext/logging"
	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "segtext: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "segtext",
		Usage:                "Add the original text and the token spacing to CoNLL-U files",
		Version:              BuildTag,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Diagnostics level: debug, info, warn or error",
				EnvVars: []string{"SEGTEXT_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   logging.FormatText,
				Usage:   "Diagnostics format: text or json",
				EnvVars: []string{"SEGTEXT_LOG_FORMAT"},
			},
		},
		Commands: []*cli.Command{
			textCommand(ui),
			importCommand(ui),
			docCommand(ui),
			statCommand(ui),
			browseCommand(ui),
			bashCommand(ui),
			versionCommand(ui),
		},
	}
}

// newLogger returns the diagnostics logger, writing to the error stream.
func newLogger(c *cli.Context, ui UI) (*slog.Logger, error) {
	return logging.New(ui.Err, c.String("log-level"), c.String("log-format"))
}

// dbFlag is the repository location: a directory of CoNLL-U files or a
// SQLite file.
func dbFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to docs directory or SQLite file",
		EnvVars:  []string{"SEGTEXT_DB"},
		Required: required,
	}
}
