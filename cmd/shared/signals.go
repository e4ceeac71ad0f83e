package shared

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// SetupSignalHandling cancels the given context on the first
// terminating signal and force-exits on the second, with a grace
// period for the terminal to be restored in between.
func SetupSignalHandling(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 2)

	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	// a broken pipe on stderr must not kill the session
	signal.Ignore(syscall.SIGPIPE)

	go func() {
		s := <-sigCh
		cancel()

		select {
		case <-sigCh:
			if ss, ok := s.(syscall.Signal); ok {
				os.Exit(128 + int(ss))
			}
			os.Exit(1)
		case <-time.After(5 * time.Second):
			os.Exit(0)
		}
	}()
}
