// Package log provides colored console output for user-facing
// messages. Everything goes to stderr so the keystroke echo on stdout
// stays clean.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// WarnMsg prints a warning message to stderr in yellow color. Used for
// per-window delivery failures, which do not stop the session.
func WarnMsg(format string, a ...interface{}) {
	yellow(os.Stderr, "[-] "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}
