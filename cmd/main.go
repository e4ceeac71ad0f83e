package main

import (
	"context"
	"errors"
	"os"

	"hsaria/cterm/cmd/fork"
	"hsaria/cterm/cmd/list"
	"hsaria/cterm/cmd/version"
	"hsaria/cterm/pkg/log"
	"hsaria/cterm/pkg/scripting"

	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:           "cterm",
		Usage:          "fork your input to multiple Terminal windows",
		DefaultCommand: "fork",
		Commands: []*cli.Command{
			fork.GetCommand(),
			list.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)

		var ee *scripting.EnumerationError
		if errors.As(err, &ee) && ee.Hint() != "" {
			log.InfoMsg("%s\n", ee.Hint())
		}

		os.Exit(1)
	}
}
