package scripting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotPermitted marks automation failures caused by missing
// permissions. The user has to grant access in System Settings, so
// retrying without surfacing this is pointless.
var ErrNotPermitted = errors.New("automation permission denied")

// AppleEvent error -1743 is "not authorized to send Apple events",
// -25211 is the System Events variant when assistive access is off.
var permissionMarkers = []string{
	"-1743",
	"-25211",
	"not authorized",
	"not authorised",
	"assistive access",
	"not allowed",
}

func isPermissionDenied(msg string) bool {
	m := strings.ToLower(msg)
	for _, marker := range permissionMarkers {
		if strings.Contains(m, marker) {
			return true
		}
	}
	return false
}

// EnumerationError reports that the open Terminal windows could not be
// listed or addressed. It is fatal: the capture loop must not start,
// or must stop, when it occurs.
type EnumerationError struct {
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("enumerating Terminal windows: %s", e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// Hint returns user guidance for permission-related failures, or an
// empty string.
func (e *EnumerationError) Hint() string {
	if errors.Is(e.Err, ErrNotPermitted) {
		return "grant Terminal automation access under System Settings > Privacy & Security > Automation"
	}
	return ""
}

// DeliveryError reports that a single target window did not receive a
// forwarded keystroke, usually because it closed between enumeration
// and delivery. It is recovered locally and never stops the session.
type DeliveryError struct {
	WindowID int
	Err      error
}

func (e *DeliveryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("window id %d did not receive keystrokes (closed or unresponsive)", e.WindowID)
	}
	return fmt.Sprintf("delivering to window id %d: %s", e.WindowID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
