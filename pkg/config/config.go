// Package config holds the settings of a forking session and the
// injectable dependencies used to test it.
package config

import (
	"fmt"
	"time"
)

// Fork holds the settings of one forking session.
type Fork struct {
	// Timeout bounds every single osascript run.
	Timeout time.Duration

	// Excludes lists window-title substrings that are never
	// forwarded to, on top of the focal window.
	Excludes []string

	// Restore raises the focal window again at the end of every
	// dispatch cycle.
	Restore bool

	Verbose bool
}

// Validate checks the configuration and returns all problems found.
func (c *Fork) Validate() []error {
	var errors []error

	if c.Timeout < 100*time.Millisecond || c.Timeout > time.Minute {
		errors = append(errors, fmt.Errorf("'--timeout' must be in [100, 60000] milliseconds"))
	}

	return errors
}
