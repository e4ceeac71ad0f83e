// Package fork implements the fork command, which captures keystrokes
// typed into the current Terminal window and replays them into every
// other open window.
package fork

import (
	"context"
	"fmt"
	"os"
	"time"

	"hsaria/cterm/cmd/shared"
	"hsaria/cterm/pkg/config"
	"hsaria/cterm/pkg/forker"
	"hsaria/cterm/pkg/log"
	"hsaria/cterm/pkg/tap"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for the fork mode.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "fork",
		Usage: "Fork keystrokes typed here into all other Terminal windows",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			if errors := config.Validate(cfg); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			shared.SetupSignalHandling(cancel)

			f := forker.New(cfg, nil)

			// Probe the scripting layer before going raw: a denied
			// permission must surface on a usable terminal.
			if err := f.Prepare(ctx); err != nil {
				return err
			}

			t, err := tap.Open(os.Stdin)
			if err != nil {
				return fmt.Errorf("opening input tap: %s", err)
			}
			defer t.Close()

			go func() {
				<-ctx.Done()
				t.Cancel()
			}()

			log.InfoMsg("Press Ctrl-C to stop\n")

			return f.Run(ctx, t)
		},
		Flags: getFlags(),
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)
	flags = append(flags, shared.GetForkFlags()...)

	return flags
}

// buildConfig merges the config file with the command line. Flags win
// whenever they were set explicitly.
func buildConfig(cmd *cli.Command) (*config.Fork, error) {
	fileCfg := &config.File{}

	if path, err := config.Path(); err == nil {
		fileCfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	cfg := fileCfg.Fork()

	if cmd.IsSet(shared.TimeoutFlag) {
		cfg.Timeout = time.Duration(cmd.Int(shared.TimeoutFlag)) * time.Millisecond
	}
	if cmd.IsSet(shared.ExcludeFlag) {
		cfg.Excludes = cmd.StringSlice(shared.ExcludeFlag)
	}
	if cmd.Bool(shared.NoRestoreFlag) {
		cfg.Restore = false
	}
	if cmd.Bool(shared.VerboseFlag) {
		cfg.Verbose = true
	}

	return cfg, nil
}
