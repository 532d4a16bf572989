// ABOUTME: RestoreOnPanic recovers from panics, puts the terminal back, and prints the stack trace.
// ABOUTME: Deferred by the CLI in the goroutine that owns the terminal; exits with status 1.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Tests swap these out.
var (
	panicOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// RestoreOnPanic should be deferred at the top of the command that owns
// the terminal. On panic it shows the cursor, leaves the alternate screen,
// restores the previous mode, prints the panic value and stack trace, then
// exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	resetScreen(t)
	fmt.Fprintf(panicOutput, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exit(1)
}

// resetScreen is best effort: every step runs even if an earlier one fails.
func resetScreen(t Terminal) {
	_, _ = t.Write([]byte(StyleReset + CursorShow + AltScreenLeave))
	_ = t.RestoreMode()
}
