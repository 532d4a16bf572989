// ABOUTME: Tests for RestoreOnPanic with the process exit and report writer swapped out
// ABOUTME: Verifies a panic restores the terminal, reports the value, and exits with status 1

package terminal

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	panicOutput = io.Discard
	os.Exit(m.Run())
}

// Not parallel: swaps the package-level exit and panicOutput.
func TestRestoreOnPanic(t *testing.T) {
	tests := []struct {
		name     string
		panicVal any
		wantCode int
		wantOut  string
	}{
		{name: "panic", panicVal: "boom", wantCode: 1, wantOut: "panic: boom"},
		{name: "no panic", wantCode: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var report bytes.Buffer
			code := -1
			panicOutput, exit = &report, func(c int) { code = c }
			t.Cleanup(func() { panicOutput, exit = io.Discard, os.Exit })

			vt := NewVirtualTerminal(24, 80)
			if err := vt.EnterRawMode(); err != nil {
				t.Fatal(err)
			}

			func() {
				defer RestoreOnPanic(vt)
				if tt.panicVal != nil {
					panic(tt.panicVal)
				}
			}()

			if code != tt.wantCode {
				t.Errorf("exit code = %d; want %d", code, tt.wantCode)
			}
			if tt.panicVal == nil {
				if !vt.IsRaw() {
					t.Error("raw mode should be untouched when no panic occurs")
				}
				if vt.Output() != "" || report.Len() != 0 {
					t.Errorf("expected no output, got %q and report %q", vt.Output(), report.String())
				}
				return
			}
			if vt.IsRaw() {
				t.Error("expected raw mode to be restored on panic")
			}
			for _, seq := range []string{CursorShow, AltScreenLeave} {
				if !strings.Contains(vt.Output(), seq) {
					t.Errorf("output %q missing %q", vt.Output(), seq)
				}
			}
			if !strings.Contains(report.String(), tt.wantOut) {
				t.Errorf("report %q missing %q", report.String(), tt.wantOut)
			}
		})
	}
}
