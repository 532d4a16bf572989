// ABOUTME: VirtualTerminal implements Terminal for tests and headless replay without a real TTY.
// ABOUTME: Captures output, counts raw-mode transitions, and simulates the attribute word.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// Simulated attribute bits toggled by raw mode.
const (
	AttrEcho   uint32 = 1 << iota // local echo
	AttrICanon                    // line buffering
	AttrISig                      // signal generation
	AttrIXON                      // flow control
)

// cookedAttrs is the attribute word of a freshly opened virtual terminal.
const cookedAttrs = AttrEcho | AttrICanon | AttrISig | AttrIXON

// VirtualTerminal is a fake Terminal.
// It records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu           sync.Mutex
	buf          bytes.Buffer
	rows         int
	cols         int
	attrs        uint32
	saved        *uint32
	interactive  bool
	enterCount   int
	restoreCount int
	sizeErr      error
}

// NewVirtualTerminal returns an interactive VirtualTerminal with the given dimensions.
func NewVirtualTerminal(rows, cols int) *VirtualTerminal {
	return &VirtualTerminal{
		rows:        rows,
		cols:        cols,
		attrs:       cookedAttrs,
		interactive: true,
	}
}

// EnterRawMode clears echo and line buffering, saving the previous attributes.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.interactive {
		return &Error{Op: "enter raw mode", Err: ErrNotTerminal}
	}
	v.enterCount++
	if v.saved != nil {
		return nil
	}
	prev := v.attrs
	v.saved = &prev
	v.attrs &^= AttrEcho | AttrICanon | AttrISig | AttrIXON
	return nil
}

// RestoreMode reapplies the saved attributes; no-op when not raw.
func (v *VirtualTerminal) RestoreMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.saved == nil {
		return nil
	}
	v.attrs = *v.saved
	v.saved = nil
	v.restoreCount++
	return nil
}

// WindowSize returns the configured terminal dimensions.
func (v *VirtualTerminal) WindowSize() (rows, cols int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, &Error{Op: "query window size", Err: v.sizeErr}
	}
	return v.rows, v.cols, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRaw reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRaw() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.saved != nil
}

// Attrs returns the simulated attribute word.
func (v *VirtualTerminal) Attrs() uint32 {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.attrs
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// RestoreCount returns how many times RestoreMode actually restored state.
func (v *VirtualTerminal) RestoreCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.restoreCount
}

// SetInteractive controls whether EnterRawMode succeeds.
func (v *VirtualTerminal) SetInteractive(ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.interactive = ok
}

// SetSizeError makes WindowSize fail with err (nil clears it).
func (v *VirtualTerminal) SetSizeError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// SetSize updates the terminal dimensions. The next WindowSize poll sees them.
func (v *VirtualTerminal) SetSize(rows, cols int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rows = rows
	v.cols = cols
}
