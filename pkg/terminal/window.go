// Package terminal addresses Terminal.app windows through the macOS
// scripting layer: listing them, choosing forwarding targets, and
// replaying keystrokes into them.
package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hsaria/cterm/pkg/scripting"
)

// A Window is one open Terminal.app window as reported by the
// scripting layer. The ID is Terminal's own window id and stays valid
// until the window closes; the tool never creates or destroys windows,
// it only observes them.
type Window struct {
	ID        int
	TTY       string
	Title     string
	Frontmost bool
}

// Window titles contain whatever the user puts in them, so the title
// goes last in each record: embedded tabs survive via SplitN and a
// title spanning lines is stitched back together during parsing.
const enumerateScript = `on run
	set out to ""
	tell application "Terminal"
		repeat with w in windows
			set out to out & (id of w) & tab & (tty of selected tab of w) & tab & (frontmost of w) & tab & (name of w) & linefeed
		end repeat
	end tell
	return out
end run`

// Enumerator lists the currently open Terminal windows. Each call
// queries the scripting layer from scratch, so new and closed windows
// show up on the next call.
type Enumerator struct {
	runner scripting.Runner
}

// NewEnumerator returns an Enumerator backed by the given runner.
func NewEnumerator(r scripting.Runner) *Enumerator {
	return &Enumerator{runner: r}
}

// Windows returns all open Terminal windows in front-to-back order.
// Failures come back as *scripting.EnumerationError and are fatal:
// they usually mean the automation permission was denied, which only
// the user can fix.
func (e *Enumerator) Windows(ctx context.Context) ([]Window, error) {
	out, err := e.runner.Run(ctx, enumerateScript)
	if err != nil {
		return nil, &scripting.EnumerationError{Err: err}
	}

	return parseWindows(out)
}

func parseWindows(out string) ([]Window, error) {
	var windows []Window

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "\t", 4)
		if len(fields) == 4 {
			if id, err := strconv.Atoi(fields[0]); err == nil {
				windows = append(windows, Window{
					ID:        id,
					TTY:       fields[1],
					Frontmost: fields[2] == "true",
					Title:     fields[3],
				})
				continue
			}
		}

		// a line that does not start a record is the rest of a
		// title containing linefeeds
		if len(windows) == 0 {
			return nil, &scripting.EnumerationError{Err: fmt.Errorf("malformed window record: %q", line)}
		}
		windows[len(windows)-1].Title += "\n" + line
	}

	return windows, nil
}

// Frontmost returns the frontmost window of ws, which is the window
// the user is typing into when the session starts.
func Frontmost(ws []Window) (Window, bool) {
	for _, w := range ws {
		if w.Frontmost {
			return w, true
		}
	}
	return Window{}, false
}
