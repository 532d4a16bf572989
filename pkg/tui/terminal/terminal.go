// ABOUTME: Defines the Terminal interface for raw mode, window size polling, and output.
// ABOUTME: Error and WithRawMode give callers a typed failure and a scoped raw-mode guard.

package terminal

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned when raw mode is requested on a device that is
// not an interactive terminal (redirected input, pipes, files).
var ErrNotTerminal = errors.New("not a terminal")

// Terminal abstracts the controlled terminal: raw mode, size polling and
// output. Exactly one loop owns a Terminal while it is in raw mode.
type Terminal interface {
	// EnterRawMode disables line buffering and local echo, saving the
	// previous settings for RestoreMode.
	EnterRawMode() error
	// RestoreMode reapplies the saved settings. It is a no-op when raw
	// mode is not active.
	RestoreMode() error
	// WindowSize returns the current (rows, cols). The value is polled and
	// may be stale right after a resize.
	WindowSize() (rows, cols int, err error)
	Write(p []byte) (n int, err error)
}

// Error reports a terminal operation that could not be performed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithRawMode runs fn with t in raw mode and restores the previous mode on
// every exit path, including panics. A restore failure is reported only
// when fn itself succeeded.
func WithRawMode(t Terminal, fn func() error) (err error) {
	if err := t.EnterRawMode(); err != nil {
		return err
	}
	defer func() {
		if rerr := t.RestoreMode(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn()
}
