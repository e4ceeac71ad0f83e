//go:build darwin

package tap

import "golang.org/x/sys/unix"

// keepInterrupts turns ISIG back on after term.MakeRaw cleared it, so
// the intr character keeps generating SIGINT instead of reaching the
// capture loop.
func keepInterrupts(fd int) error {
	tio, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	if err != nil {
		return err
	}

	tio.Lflag |= unix.ISIG
	return unix.IoctlSetTermios(fd, unix.TIOCSETA, tio)
}
