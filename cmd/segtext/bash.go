package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const complete = `#! /bin/bash

_segtext_autocomplete() {
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # segtext lists the candidates for the words before the cursor
    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion )

    if [ $? -eq 0 ]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
}

complete -o bashdefault -o default -F _segtext_autocomplete segtext
`

func bashCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "bash",
		Usage: "Output bash completion script",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprint(ui.Out, complete)
			return err
		},
	}
}
