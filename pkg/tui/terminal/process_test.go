// ABOUTME: ProcessTerminal tests against a real pseudo-terminal pair from creack/pty.
// ABOUTME: Checks raw-mode entry, bit-identical restoration, and refusal on non-terminals.

//go:build unix

package terminal

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/term"
)

func openPTY(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func TestProcessTerminal_RawModeRoundTrip(t *testing.T) {
	t.Parallel()
	_, tty := openPTY(t)

	before, err := term.GetState(int(tty.Fd()))
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}

	pt := NewProcessTerminal(tty, tty)
	if err := pt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	if !pt.IsRaw() {
		t.Fatal("expected raw mode to be active")
	}
	raw, err := term.GetState(int(tty.Fd()))
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(before, raw) {
		t.Error("raw state should differ from the cooked state")
	}

	if err := pt.RestoreMode(); err != nil {
		t.Fatalf("RestoreMode() unexpected error: %v", err)
	}
	after, err := term.GetState(int(tty.Fd()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Error("terminal attributes after restore differ from the pre-entry snapshot")
	}

	// Second restore is a no-op.
	if err := pt.RestoreMode(); err != nil {
		t.Errorf("second RestoreMode() error: %v", err)
	}
}

func TestProcessTerminal_WindowSize(t *testing.T) {
	t.Parallel()
	ptmx, tty := openPTY(t)

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	pt := NewProcessTerminal(tty, tty)
	rows, cols, err := pt.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize() unexpected error: %v", err)
	}
	if rows != 30 || cols != 100 {
		t.Errorf("WindowSize() = (%d, %d), want (30, 100)", rows, cols)
	}
}

func TestProcessTerminal_NotATerminal(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	pt := NewProcessTerminal(r, w)
	err = pt.EnterRawMode()
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("EnterRawMode() on a pipe = %v, want ErrNotTerminal", err)
	}
	if pt.IsRaw() {
		t.Error("raw mode must not be recorded after failure")
	}
}
