// Package shared provides common CLI flag definitions and signal
// handling used across cterm's command-line interface.
package shared

import (
	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// VerboseFlag is the name of the flag to enable verbose error logging.
const VerboseFlag = "verbose"

// TimeoutFlag is the name of the flag to specify the per-script
// timeout in milliseconds.
const TimeoutFlag = "timeout"

// GetCommonFlags returns the CLI flags shared by all commands that
// talk to the scripting layer.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose error logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.IntFlag{
			Name:     TimeoutFlag,
			Aliases:  []string{"t"},
			Usage:    "Timeout for a single scripting call in milliseconds",
			Category: categoryCommon,
			Value:    10000, // 10 seconds default
			Required: false,
		},
	}
}

const categoryFork = "fork"

// ExcludeFlag is the name of the flag for window-title exclusion
// patterns.
const ExcludeFlag = "exclude"

// NoRestoreFlag is the name of the flag that disables re-raising the
// focal window after each dispatch cycle.
const NoRestoreFlag = "no-restore"

// GetForkFlags returns the CLI flags specific to the fork command.
func GetForkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:     ExcludeFlag,
			Aliases:  []string{"x"},
			Usage:    "Skip windows whose title contains this text (repeatable)",
			Category: categoryFork,
			Value:    []string{},
			Required: false,
		},
		&cli.BoolFlag{
			Name:     NoRestoreFlag,
			Aliases:  []string{},
			Usage:    "Do not raise the original window again after each keystroke",
			Category: categoryFork,
			Value:    false,
			Required: false,
		},
	}
}
