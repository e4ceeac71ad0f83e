package terminal

import "strings"

// SelectTargets returns the windows that should receive forwarded
// keystrokes: every window except the focal one, minus any whose title
// contains one of the exclude substrings. Order follows the input
// window list. An empty result is valid and means nothing gets
// forwarded this cycle.
func SelectTargets(windows []Window, focalID int, excludes []string) []Window {
	var targets []Window

	for _, w := range windows {
		if w.ID == focalID {
			continue
		}
		if excluded(w.Title, excludes) {
			continue
		}
		targets = append(targets, w)
	}

	return targets
}

func excluded(title string, excludes []string) bool {
	for _, e := range excludes {
		if e != "" && strings.Contains(title, e) {
			return true
		}
	}
	return false
}
