// ABOUTME: Button widget: Enter or Space fires OnPress, every other key is ignored
// ABOUTME: Renders as a rounded box when at least three rows tall, else as "[ title ]"

package widget

import (
	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
)

// ButtonConfig configures a Button.
type ButtonConfig struct {
	Common
	OnPress func(Context) error
}

// Button has no state besides focus.
type Button struct {
	core
	onPress func(Context) error
}

// NewButton validates cfg and builds a Button.
func NewButton(cfg ButtonConfig) (*Button, error) {
	c, err := newCore("Button", cfg.Common)
	if err != nil {
		return nil, err
	}
	return &Button{core: c, onPress: cfg.OnPress}, nil
}

func (b *Button) handleKey(k key.Key, ctx Context) bool {
	pressed := k.Type == key.KeyEnter || (k.Type == key.KeyRune && k.Rune == ' ' && !k.Alt && !k.Ctrl)
	if !pressed {
		return false
	}
	invoke(b.Title(), "on-press", func() error { return callCtx(b.onPress, ctx) })
	return true
}

// Render draws the button label.
func (b *Button) Render(out *tui.RenderBuffer, p theme.Palette) {
	r := b.Rect()
	if r.Height >= 3 && r.Width >= 4 {
		out.WriteLines(boxed(b.Title(), b.Focused(), r.Width, r.Height, p))
		return
	}
	out.WriteLine(bracketed(b.Title(), b.Focused(), r.Width, p))
}
