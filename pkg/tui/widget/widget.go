// ABOUTME: Closed widget variant set {TextInput, SelectableList, Button} with focus and key dispatch
// ABOUTME: Callback failures and panics are logged and swallowed so they never reach the event loop

package widget

import (
	"fmt"
	"runtime/debug"

	"github.com/mauromedda/focusterm/internal/log"
	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
)

// Widget is one of *TextInput, *SelectableList or *Button. The set is
// closed: the unexported base method keeps other packages from adding
// variants.
type Widget interface {
	Title() string
	Rect() tui.Rect
	Focused() bool
	// Data returns the value attached at construction.
	Data() any
	// Render draws the widget into out, at most Rect().Width columns
	// wide and Rect().Height lines tall.
	Render(out *tui.RenderBuffer, p theme.Palette)

	base() *core
}

// Context is passed to every callback.
type Context struct {
	Widget Widget
	Key    key.Key // zero for focus transitions
	Data   any     // user data of the owning screen

	// Status, when set, replaces the screen's status bar message.
	Status func(msg string)
}

// SetStatus shows msg in the status bar of the owning screen, if any.
func (c Context) SetStatus(msg string) {
	if c.Status != nil {
		c.Status(msg)
	}
}

// Common holds the fields shared by all variants.
type Common struct {
	Title string
	Rect  tui.Rect
	Data  any

	OnFocus   func(Context) error
	OnUnfocus func(Context) error
}

type core struct {
	Common
	focused bool
}

func newCore(variant string, c Common) (core, error) {
	if c.Title == "" {
		return core{}, &ConfigError{Widget: variant, Field: "title", Reason: "must not be empty"}
	}
	if c.Rect.Width < 1 {
		return core{}, &ConfigError{Widget: c.Title, Field: "width", Reason: fmt.Sprintf("must be >= 1, got %d", c.Rect.Width)}
	}
	if c.Rect.Height < 1 {
		return core{}, &ConfigError{Widget: c.Title, Field: "height", Reason: fmt.Sprintf("must be >= 1, got %d", c.Rect.Height)}
	}
	return core{Common: c}, nil
}

func (c *core) Title() string  { return c.Common.Title }
func (c *core) Rect() tui.Rect { return c.Common.Rect }
func (c *core) Focused() bool  { return c.focused }
func (c *core) Data() any      { return c.Common.Data }
func (c *core) base() *core    { return c }

// SetFocus marks w focused and runs its OnFocus callback.
func SetFocus(w Widget, ctx Context) {
	c := w.base()
	c.focused = true
	ctx.Widget = w
	invoke(c.Common.Title, "on-focus", func() error { return callCtx(c.OnFocus, ctx) })
}

// ClearFocus marks w unfocused and runs its OnUnfocus callback.
func ClearFocus(w Widget, ctx Context) {
	c := w.base()
	c.focused = false
	ctx.Widget = w
	invoke(c.Common.Title, "on-unfocus", func() error { return callCtx(c.OnUnfocus, ctx) })
}

// HandleKey routes k to the variant and reports whether it was consumed.
func HandleKey(w Widget, k key.Key, ctx Context) bool {
	ctx.Widget = w
	ctx.Key = k
	switch v := w.(type) {
	case *TextInput:
		return v.handleKey(k, ctx)
	case *SelectableList:
		return v.handleKey(k, ctx)
	case *Button:
		return v.handleKey(k, ctx)
	}
	return false
}

// Validate checks that w lies inside a rows x cols grid. The grid can
// change size at runtime, so this runs when the widget gains focus.
func Validate(w Widget, rows, cols int) error {
	r := w.Rect()
	if !r.Contains(rows, cols) {
		return &ConfigError{
			Widget: w.Title(),
			Field:  "rect",
			Reason: fmt.Sprintf("%dx%d at (%d,%d) does not fit a %dx%d terminal", r.Width, r.Height, r.X, r.Y, cols, rows),
		}
	}
	return nil
}

func callCtx(fn func(Context) error, ctx Context) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// invoke runs a callback and reports whether it succeeded. Errors and
// panics are logged, never propagated.
func invoke(title, slot string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("widget %q: %s callback panicked: %v\n%s", title, slot, r, debug.Stack())
			ok = false
		}
	}()
	if err := fn(); err != nil {
		log.Warn("widget %q: %s callback failed: %v", title, slot, err)
		return false
	}
	return true
}
