package terminal

import (
	"context"
	"errors"
	"testing"

	"hsaria/cterm/mocks"
	"hsaria/cterm/pkg/scripting"
)

func TestParseWindows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		out     string
		want    []Window
		wantErr bool
	}{
		{
			name: "two windows",
			out:  "100\t/dev/ttys001\ttrue\tbash\n101\t/dev/ttys002\tfalse\tzsh — worker\n",
			want: []Window{
				{ID: 100, TTY: "/dev/ttys001", Frontmost: true, Title: "bash"},
				{ID: 101, TTY: "/dev/ttys002", Frontmost: false, Title: "zsh — worker"},
			},
		},
		{
			name: "empty output means no windows",
			out:  "",
			want: nil,
		},
		{
			name: "blank lines are skipped",
			out:  "\n100\t/dev/ttys001\ttrue\tbash\n\n",
			want: []Window{
				{ID: 100, TTY: "/dev/ttys001", Frontmost: true, Title: "bash"},
			},
		},
		{
			name: "title containing tabs survives",
			out:  "100\t/dev/ttys001\tfalse\ta\tb\tc\n",
			want: []Window{
				{ID: 100, TTY: "/dev/ttys001", Frontmost: false, Title: "a\tb\tc"},
			},
		},
		{
			name: "title containing linefeeds is stitched back together",
			out:  "100\t/dev/ttys001\ttrue\tline one\nline two\n101\t/dev/ttys002\tfalse\tzsh\n",
			want: []Window{
				{ID: 100, TTY: "/dev/ttys001", Frontmost: true, Title: "line one\nline two"},
				{ID: 101, TTY: "/dev/ttys002", Frontmost: false, Title: "zsh"},
			},
		},
		{
			name: "linefeed title part that looks like a record tail",
			out:  "100\t/dev/ttys001\ttrue\tfirst\nnot\ta\tvalid\trecord\n",
			want: []Window{
				{ID: 100, TTY: "/dev/ttys001", Frontmost: true, Title: "first\nnot\ta\tvalid\trecord"},
			},
		},
		{
			name: "carriage returns are stripped",
			out:  "100\t/dev/ttys001\ttrue\tbash\r\n",
			want: []Window{
				{ID: 100, TTY: "/dev/ttys001", Frontmost: true, Title: "bash"},
			},
		},
		{
			name:    "missing fields",
			out:     "100\t/dev/ttys001\n",
			wantErr: true,
		},
		{
			name:    "non-numeric id",
			out:     "abc\t/dev/ttys001\ttrue\tbash\n",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseWindows(tc.out)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseWindows() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				var ee *scripting.EnumerationError
				if !errors.As(err, &ee) {
					t.Errorf("error = %T, want *scripting.EnumerationError", err)
				}
				return
			}

			if len(got) != len(tc.want) {
				t.Fatalf("parseWindows() returned %d windows, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("window[%d] = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestEnumerator_Windows(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockRunner(mocks.ScriptResult{
		Output: "100\t/dev/ttys001\ttrue\tbash\n101\t/dev/ttys002\tfalse\tzsh",
	})

	e := NewEnumerator(m)
	ws, err := e.Windows(context.Background())
	if err != nil {
		t.Fatalf("Windows() error: %v", err)
	}
	if len(ws) != 2 {
		t.Fatalf("Windows() returned %d windows, want 2", len(ws))
	}
	if ws[0].ID != 100 || !ws[0].Frontmost {
		t.Errorf("first window = %+v", ws[0])
	}

	calls := m.Calls()
	if len(calls) != 1 {
		t.Fatalf("runner received %d calls, want 1", len(calls))
	}
	if len(calls[0].Args) != 0 {
		t.Errorf("enumeration passed args %v, want none", calls[0].Args)
	}
}

func TestEnumerator_Windows_RunnerError(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockRunner(mocks.ScriptResult{
		Err: scripting.ErrNotPermitted,
	})

	e := NewEnumerator(m)
	_, err := e.Windows(context.Background())
	if err == nil {
		t.Fatal("Windows() error = nil, want EnumerationError")
	}

	var ee *scripting.EnumerationError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %T, want *scripting.EnumerationError", err)
	}
	if !errors.Is(err, scripting.ErrNotPermitted) {
		t.Error("permission cause lost in wrapping")
	}
}

func TestFrontmost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ws     []Window
		wantID int
		wantOK bool
	}{
		{
			name: "frontmost present",
			ws: []Window{
				{ID: 1},
				{ID: 2, Frontmost: true},
			},
			wantID: 2,
			wantOK: true,
		},
		{
			name:   "no windows",
			ws:     nil,
			wantOK: false,
		},
		{
			name:   "no frontmost window",
			ws:     []Window{{ID: 1}, {ID: 2}},
			wantOK: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w, ok := Frontmost(tc.ws)
			if ok != tc.wantOK {
				t.Fatalf("Frontmost() ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && w.ID != tc.wantID {
				t.Errorf("Frontmost() id = %d, want %d", w.ID, tc.wantID)
			}
		})
	}
}
