package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uiprogress"
	"github.com/revelaction/segtext/annotate"
	"github.com/revelaction/segtext/conllu"
	"github.com/revelaction/segtext/input"
	"github.com/revelaction/segtext/render"
	"github.com/urfave/cli/v2"
)

func annotateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "ptb",
			Usage: "Unescape PTB forms and lemmas (``, '', -LRB-, ...) before matching",
		},
		&cli.BoolFlag{
			Name:  "basic",
			Usage: "Only add a # text = comment, do not merge comments or compute SpaceAfter",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Fail when document text is left over after the last sentence",
		},
		&cli.BoolFlag{
			Name:    "progress",
			Aliases: []string{"p"},
			Usage:   "Show a progress bar on the error stream",
		},
	}
}

func textCommand(ui UI) *cli.Command {
	flags := append(annotateFlags(), &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   render.Defaultformat,
		Usage:   "Output format: conllu, text or json",
	})

	return &cli.Command{
		Name:      "text",
		Usage:     "Add # text = comments and SpaceAfter=No to a CoNLL-U file",
		ArgsUsage: "<text file> <conllu file>",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("text command needs two arguments: <text file> <conllu file>")
			}

			out, err := render.New(c.String("format"), ui.Out)
			if err != nil {
				return err
			}

			_, err = annotateFiles(c, ui, c.Args().Get(0), c.Args().Get(1), out)
			if ferr := out.Flush(); err == nil {
				err = ferr
			}
			return err
		},
	}
}

// annotateFiles runs the annotation of the CoNLL-U file against the text
// file, writing the sentences to out.
func annotateFiles(c *cli.Context, ui UI, textPath, conlluPath string, out annotate.Sink) (annotate.Result, error) {
	logger, err := newLogger(c, ui)
	if err != nil {
		return annotate.Result{}, err
	}

	text, err := input.ReadText(textPath)
	if err != nil {
		return annotate.Result{}, err
	}
	logger.Info("document loaded", "path", textPath, "size", humanize.Bytes(uint64(len(text))))

	rc, err := input.Open(conlluPath)
	if err != nil {
		return annotate.Result{}, err
	}
	defer rc.Close()

	opts := annotate.Extended()
	if c.Bool("basic") {
		opts = annotate.Basic()
	}
	opts.UnescapePTB = c.Bool("ptb")

	if c.Bool("progress") && len(text) > 0 {
		p := uiprogress.New()
		p.SetOut(ui.Err)
		bar := p.AddBar(len(text)).AppendCompleted().PrependElapsed()
		p.Start()
		defer p.Stop()

		opts.OnProgress = func(consumed, total int) {
			_ = bar.Set(consumed)
		}
	}

	a := annotate.New(text, opts, logger)
	res, err := a.Run(conllu.NewReader(rc), out)
	if err != nil {
		return res, fmt.Errorf("%s: %w", conlluPath, err)
	}

	logResult(logger, res)

	if res.Leftover != "" && c.Bool("strict") {
		return res, fmt.Errorf("%s: %w: %q", textPath, annotate.ErrUnconsumedText, res.Leftover)
	}

	return res, nil
}

func logResult(logger *slog.Logger, res annotate.Result) {
	logger.Info("annotation done",
		"sentences", res.Stats.NumSentences,
		"tokens", res.Stats.NumTokens,
		"no_space", res.Stats.NumNoSpace,
	)
}
