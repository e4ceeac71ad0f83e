// Package scripting runs AppleScript through osascript and classifies
// the errors the automation layer reports back.
package scripting

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an AppleScript and returns its output with trailing
// whitespace removed. Extra args are passed to the script's run
// handler as argv, which avoids quoting user input into script text.
type Runner interface {
	Run(ctx context.Context, script string, args ...string) (string, error)
}

// Osascript is a Runner backed by the osascript binary.
type Osascript struct{}

// Run executes the script and returns its stdout. Failures reported
// by the automation layer come back as errors, wrapping
// ErrNotPermitted when they look like a denied permission.
func (Osascript) Run(ctx context.Context, script string, args ...string) (string, error) {
	cmdArgs := append([]string{"-e", script}, args...)
	cmd := exec.CommandContext(ctx, "osascript", cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		if isPermissionDenied(msg) {
			return "", fmt.Errorf("%w: %s", ErrNotPermitted, msg)
		}
		return "", fmt.Errorf("osascript: %s", msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}
