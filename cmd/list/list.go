// Package list implements the list command, which prints the open
// Terminal windows. It doubles as a quick check that the automation
// permission is in place.
package list

import (
	"context"
	"fmt"
	"time"

	"hsaria/cterm/cmd/shared"
	"hsaria/cterm/pkg/config"
	"hsaria/cterm/pkg/terminal"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for listing Terminal windows.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List open Terminal windows (also verifies automation access)",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			timeout := time.Duration(cmd.Int(shared.TimeoutFlag)) * time.Millisecond
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			enum := terminal.NewEnumerator(config.GetRunner(nil))
			windows, err := enum.Windows(ctx)
			if err != nil {
				return err
			}

			if len(windows) == 0 {
				fmt.Println("no Terminal windows open")
				return nil
			}

			for _, w := range windows {
				marker := " "
				if w.Frontmost {
					marker = "*"
				}
				fmt.Printf("%s %8d  %-14s  %s\n", marker, w.ID, w.TTY, w.Title)
			}

			return nil
		},
		Flags: shared.GetCommonFlags(),
	}
}
