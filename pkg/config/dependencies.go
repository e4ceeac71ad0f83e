package config

import (
	"io"
	"os"

	"hsaria/cterm/pkg/scripting"
)

// Dependencies contains injectable dependencies for testing. All
// fields are optional and default to the real implementations when
// nil.
type Dependencies struct {
	Runner scripting.Runner
	Stdout StdoutFunc
}

// StdoutFunc is a function that returns a writer for stdout. It
// returns an io.Writer to allow for mock implementations.
type StdoutFunc func() io.Writer

// GetRunner returns the script runner from dependencies, or the real
// osascript-backed one.
func GetRunner(deps *Dependencies) scripting.Runner {
	if deps != nil && deps.Runner != nil {
		return deps.Runner
	}
	return scripting.Osascript{}
}

// GetStdoutFunc returns the stdout function from dependencies, or a
// default implementation using os.Stdout.
func GetStdoutFunc(deps *Dependencies) StdoutFunc {
	if deps != nil && deps.Stdout != nil {
		return deps.Stdout
	}
	return func() io.Writer {
		return os.Stdout
	}
}
