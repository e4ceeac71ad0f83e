// Package forker runs the capture and dispatch loop that forks local
// keystrokes into the other open Terminal windows.
package forker

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"hsaria/cterm/pkg/config"
	"hsaria/cterm/pkg/log"
	"hsaria/cterm/pkg/terminal"
)

// KeystrokeSource yields chunks of raw input, one blocking read at a
// time. io.EOF ends the session cleanly.
type KeystrokeSource interface {
	Next(buf []byte) (int, error)
}

// Forker owns one forking session. The focal window is pinned when
// Prepare runs; the target set is recomputed from a fresh enumeration
// on every dispatch cycle, so windows opened or closed mid-session are
// picked up on the next keystroke.
type Forker struct {
	cfg  *config.Fork
	enum *terminal.Enumerator
	disp *terminal.Dispatcher

	stdout io.Writer

	focal    terminal.Window
	prepared bool
}

// New creates a Forker for the given session config.
func New(cfg *config.Fork, deps *config.Dependencies) *Forker {
	runner := config.GetRunner(deps)

	return &Forker{
		cfg:    cfg,
		enum:   terminal.NewEnumerator(runner),
		disp:   terminal.NewDispatcher(runner, cfg.Restore),
		stdout: config.GetStdoutFunc(deps)(),
	}
}

// Prepare enumerates the open windows and pins the frontmost one as
// the focal window. It must succeed before the terminal goes raw: a
// failure here is almost always the automation permission prompt being
// denied, and the user needs a readable terminal to deal with that.
func (f *Forker) Prepare(ctx context.Context) error {
	windows, err := f.windows(ctx)
	if err != nil {
		return err
	}

	focal, ok := terminal.Frontmost(windows)
	if !ok {
		return fmt.Errorf("cannot identify the focal window: no frontmost Terminal window")
	}
	f.focal = focal
	f.prepared = true

	targets := terminal.SelectTargets(windows, f.focal.ID, f.cfg.Excludes)
	log.InfoMsg("Forking input from window id %d (%s) to %d other window(s)\n", f.focal.ID, f.focal.TTY, len(targets))

	return nil
}

// Run enters the capture loop: read a chunk, echo it locally, pick up
// the current window list, and deliver the keystrokes to every target.
// It returns nil when the source ends or ctx is canceled, and an error
// when keystrokes can no longer be read or windows can no longer be
// enumerated.
func (f *Forker) Run(ctx context.Context, src KeystrokeSource) error {
	if !f.prepared {
		if err := f.Prepare(ctx); err != nil {
			return err
		}
	}

	buf := make([]byte, 512)
	for {
		n, err := src.Next(buf)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading keystrokes: %s", err)
		}
		if ctx.Err() != nil {
			return nil
		}
		if n == 0 {
			continue
		}

		chunk := buf[:n]
		f.echo(chunk)

		segs := terminal.SplitKeystrokes(chunk)
		if len(segs) == 0 {
			continue
		}

		windows, err := f.windows(ctx)
		if err != nil {
			return err
		}

		targets := terminal.SelectTargets(windows, f.focal.ID, f.cfg.Excludes)
		if len(targets) == 0 {
			if f.cfg.Verbose {
				log.InfoMsg("No other windows open, nothing forwarded\n")
			}
			continue
		}

		if f.cfg.Verbose {
			log.InfoMsg("Dispatching %d segment(s) to %d window(s)\n", len(segs), len(targets))
		}

		for _, derr := range f.deliver(ctx, segs, targets) {
			log.WarnMsg("%s\n", derr)
		}
	}
}

func (f *Forker) windows(ctx context.Context) ([]terminal.Window, error) {
	runCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	return f.enum.Windows(runCtx)
}

func (f *Forker) deliver(ctx context.Context, segs []terminal.Segment, targets []terminal.Window) []error {
	runCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	return f.disp.Deliver(runCtx, segs, targets, f.focal.ID)
}

// echo writes the captured chunk back to stdout. Raw mode turns off
// both kernel echo and output post-processing, so carriage returns
// need the newline added back by hand for the display to advance.
func (f *Forker) echo(chunk []byte) {
	out := bytes.ReplaceAll(chunk, []byte("\r"), []byte("\r\n"))
	f.stdout.Write(out)
}
