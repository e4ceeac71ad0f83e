package terminal

// Segment is one deliverable unit of captured input: a run of
// printable text, a single special key, or a control chord. Exactly
// one of the fields is meaningful.
type Segment struct {
	Text    string // printable run, delivered via keystroke
	KeyCode int    // System Events key code, when Text == "" and Ctrl == 0
	Ctrl    byte   // control chord letter, e.g. 'c' for Ctrl-C
}

// System Events key codes for keys that cannot travel as keystroke
// text.
const (
	keyCodeReturn = 36
	keyCodeTab    = 48
	keyCodeDelete = 51
	keyCodeEscape = 53
)

// SplitKeystrokes splits a captured chunk of raw input bytes into
// ordered segments. Printable bytes (including multi-byte UTF-8) are
// grouped into text runs; return, tab, escape and delete map to key
// codes; remaining C0 control bytes become Ctrl chords. Control bytes
// with no sensible synthetic equivalent are dropped, order of
// everything else is preserved.
func SplitKeystrokes(chunk []byte) []Segment {
	var segs []Segment
	var text []byte

	flush := func() {
		if len(text) > 0 {
			segs = append(segs, Segment{Text: string(text)})
			text = nil
		}
	}

	for _, b := range chunk {
		switch {
		case b == '\r' || b == '\n':
			flush()
			segs = append(segs, Segment{KeyCode: keyCodeReturn})
		case b == '\t':
			flush()
			segs = append(segs, Segment{KeyCode: keyCodeTab})
		case b == 0x1b:
			flush()
			segs = append(segs, Segment{KeyCode: keyCodeEscape})
		case b == 0x7f || b == 0x08:
			flush()
			segs = append(segs, Segment{KeyCode: keyCodeDelete})
		case b >= 0x01 && b <= 0x1a:
			flush()
			segs = append(segs, Segment{Ctrl: 'a' + b - 1})
		case b < 0x20:
			flush() // no synthetic equivalent
		default:
			text = append(text, b)
		}
	}
	flush()

	return segs
}
