package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hsaria/cterm/pkg/scripting"
)

// Dispatcher replays captured keystrokes into target windows. Each
// delivery cycle is a single osascript invocation that raises every
// target in turn, synthesizes the keystrokes through System Events,
// and reports back the ids of windows it could not serve.
type Dispatcher struct {
	runner       scripting.Runner
	restoreFocal bool
}

// NewDispatcher returns a Dispatcher backed by the given runner. When
// restoreFocal is set, the focal window is raised again at the end of
// every cycle so the user keeps typing where they started.
func NewDispatcher(r scripting.Runner, restoreFocal bool) *Dispatcher {
	return &Dispatcher{runner: r, restoreFocal: restoreFocal}
}

// Deliver sends the segments to every target window, in target order,
// each exactly once. It returns one *scripting.DeliveryError per
// window that could not be reached; a failed window never aborts
// delivery to the remaining ones.
func (d *Dispatcher) Deliver(ctx context.Context, segs []Segment, targets []Window, focalID int) []error {
	if len(segs) == 0 || len(targets) == 0 {
		return nil
	}

	script, args := buildDeliveryScript(segs, targets, focalID, d.restoreFocal)

	out, err := d.runner.Run(ctx, script, args...)
	if err != nil {
		// The whole cycle failed before any per-window error
		// handling could run, so no target got the keystrokes.
		errs := make([]error, 0, len(targets))
		for _, w := range targets {
			errs = append(errs, &scripting.DeliveryError{WindowID: w.ID, Err: err})
		}
		return errs
	}

	return deliveryFailures(out, targets)
}

// buildDeliveryScript generates the per-cycle AppleScript. Text
// segments travel as argv items so user input never needs quoting
// into script source. Each target sits in its own try block: a window
// that closed since enumeration only adds its id to the failure list.
func buildDeliveryScript(segs []Segment, targets []Window, focalID int, restoreFocal bool) (string, []string) {
	var args []string
	var keys strings.Builder

	for _, s := range segs {
		switch {
		case s.Text != "":
			args = append(args, s.Text)
			fmt.Fprintf(&keys, "\t\t\t\tkeystroke (item %d of argv)\n", len(args))
		case s.Ctrl != 0:
			fmt.Fprintf(&keys, "\t\t\t\tkeystroke \"%c\" using control down\n", s.Ctrl)
		default:
			fmt.Fprintf(&keys, "\t\t\t\tkey code %d\n", s.KeyCode)
		}
	}

	ids := make([]string, len(targets))
	for i, w := range targets {
		ids[i] = strconv.Itoa(w.ID)
	}

	var b strings.Builder
	b.WriteString("on run argv\n")
	b.WriteString("\tset failed to {}\n")
	fmt.Fprintf(&b, "\trepeat with wid in {%s}\n", strings.Join(ids, ", "))
	b.WriteString("\t\ttry\n")
	b.WriteString("\t\t\ttell application \"Terminal\" to set frontmost of window id wid to true\n")
	b.WriteString("\t\t\ttell application \"System Events\" to tell process \"Terminal\"\n")
	b.WriteString(keys.String())
	b.WriteString("\t\t\tend tell\n")
	b.WriteString("\t\ton error\n")
	b.WriteString("\t\t\tset end of failed to (contents of wid)\n")
	b.WriteString("\t\tend try\n")
	b.WriteString("\tend repeat\n")
	if restoreFocal {
		b.WriteString("\ttry\n")
		fmt.Fprintf(&b, "\t\ttell application \"Terminal\" to set frontmost of window id %d to true\n", focalID)
		b.WriteString("\tend try\n")
	}
	b.WriteString("\tset AppleScript's text item delimiters to \",\"\n")
	b.WriteString("\treturn failed as text\n")
	b.WriteString("end run")

	return b.String(), args
}

// deliveryFailures turns the comma-separated failed ids returned by
// the delivery script into per-window errors, in target order.
func deliveryFailures(out string, targets []Window) []error {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}

	failed := make(map[int]bool)
	for _, f := range strings.Split(out, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			continue
		}
		failed[id] = true
	}

	var errs []error
	for _, w := range targets {
		if failed[w.ID] {
			errs = append(errs, &scripting.DeliveryError{WindowID: w.ID})
		}
	}

	return errs
}
