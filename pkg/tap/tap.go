// Package tap captures the keystrokes typed into the controlling
// terminal. While a tap is open the terminal is in raw mode, so every
// byte arrives immediately and nothing echoes twice; ISIG stays on so
// Ctrl-C still interrupts the process instead of being captured.
package tap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"hsaria/cterm/pkg/log"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

var newCancelReader = cancelreader.NewReader

// Tap reads raw keystrokes from the controlling terminal. It blocks
// only on the next read; Cancel unblocks a pending read from another
// goroutine.
type Tap struct {
	in     io.Reader
	cancel cancelreader.CancelReader

	fd       int
	oldState *term.State
	out      *os.File
}

// Open puts in (normally os.Stdin) into raw mode and returns a Tap
// reading from it. Callers must Close the tap to restore the terminal.
func Open(in *os.File) (*Tap, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", in.Name())
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting terminal to raw mode: %s", err)
	}

	if err := keepInterrupts(fd); err != nil {
		term.Restore(fd, oldState)
		return nil, fmt.Errorf("re-enabling interrupts: %s", err)
	}

	t := &Tap{in: in, fd: fd, oldState: oldState, out: os.Stdout}
	t.useCancelReader(in)

	return t, nil
}

// useCancelReader wraps the input in a cancelable reader. Without one
// a pending read cannot be unblocked, so stopping falls back to the
// signal handler's force exit; that degraded mode is worth a warning.
func (t *Tap) useCancelReader(in io.Reader) {
	cr, err := newCancelReader(in)
	if err != nil {
		log.WarnMsg("cancelable input unavailable (%s), stopping may take a few seconds\n", err)
		return
	}

	t.cancel = cr
	t.in = cr
}

// Next blocks until the user types something and fills buf with the
// captured bytes. A canceled tap reports io.EOF.
func (t *Tap) Next(buf []byte) (int, error) {
	n, err := t.in.Read(buf)
	if err != nil && errors.Is(err, cancelreader.ErrCanceled) {
		return n, io.EOF
	}
	return n, err
}

// Cancel unblocks a pending Next. Safe to call from another goroutine.
func (t *Tap) Cancel() {
	if t.cancel != nil {
		t.cancel.Cancel()
	}
}

// Close cancels any pending read and restores the terminal state.
func (t *Tap) Close() error {
	t.Cancel()

	err := term.Restore(t.fd, t.oldState)
	fmt.Fprintf(t.out, "\033[2K\r") // clear line
	return err
}
