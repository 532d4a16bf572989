// ABOUTME: ProcessTerminal implements Terminal on real file descriptors using golang.org/x/term.
// ABOUTME: Refuses raw mode on non-interactive input and keeps the saved state for restoration.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by an input and an output file.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal reading from in and writing
// to out. Passing nil selects os.Stdin / os.Stdout.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input to raw mode, saving the previous state.
// Calling it again while raw mode is active keeps the first saved state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}

	fd := t.in.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return &Error{Op: "enter raw mode", Err: ErrNotTerminal}
	}

	state, err := term.MakeRaw(int(fd))
	if err != nil {
		return &Error{Op: "enter raw mode", Err: err}
	}
	t.oldState = state
	return nil
}

// RestoreMode restores the terminal to the state saved by EnterRawMode.
func (t *ProcessTerminal) RestoreMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return &Error{Op: "restore mode", Err: err}
	}
	t.oldState = nil
	return nil
}

// IsRaw reports whether raw mode is currently active.
func (t *ProcessTerminal) IsRaw() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.oldState != nil
}

// WindowSize returns the current terminal dimensions as (rows, cols).
func (t *ProcessTerminal) WindowSize() (rows, cols int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, &Error{Op: "query window size", Err: err}
	}
	return h, w, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
