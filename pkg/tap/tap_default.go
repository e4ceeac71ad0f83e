//go:build !darwin

package tap

// keepInterrupts is a no-op where the darwin termios constants are not
// available. Non-darwin builds exist for development only; there the
// intr character is captured like any other byte.
func keepInterrupts(int) error {
	return nil
}
