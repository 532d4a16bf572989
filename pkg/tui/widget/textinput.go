// ABOUTME: TextInput widget: single-line field filtered by input class, bounded by its width in cells
// ABOUTME: Plain or password echo; Enter accepts NFC-normalised text, Escape cancels without edits

package widget

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/focusterm/pkg/tui"
	"github.com/mauromedda/focusterm/pkg/tui/key"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
	"github.com/mauromedda/focusterm/pkg/tui/width"
)

// InputClass constrains the characters a TextInput accepts.
type InputClass int

const (
	ClassAny InputClass = iota
	ClassNumeric
	ClassAlpha
	ClassAlphanumeric
)

var classNames = map[InputClass]string{
	ClassAny:          "any",
	ClassNumeric:      "numeric",
	ClassAlpha:        "alpha",
	ClassAlphanumeric: "alphanumeric",
}

func (c InputClass) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return fmt.Sprintf("InputClass(%d)", int(c))
}

// ParseInputClass maps a class name to its value. The empty string is ClassAny.
func ParseInputClass(s string) (InputClass, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ClassAny, nil
	}
	for c, n := range classNames {
		if n == name {
			return c, nil
		}
	}
	return ClassAny, fmt.Errorf("unknown input class %q", s)
}

// Accepts reports whether r belongs to the class.
func (c InputClass) Accepts(r rune) bool {
	switch c {
	case ClassNumeric:
		return unicode.IsDigit(r)
	case ClassAlpha:
		return unicode.IsLetter(r)
	case ClassAlphanumeric:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	default:
		return unicode.IsPrint(r)
	}
}

// DisplayMode controls how a TextInput echoes its buffer.
type DisplayMode int

const (
	ModePlain DisplayMode = iota
	ModePassword
)

func (m DisplayMode) String() string {
	if m == ModePassword {
		return "password"
	}
	return "plain"
}

// ParseDisplayMode maps "plain" or "password" to a mode. The empty string is ModePlain.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return ModePlain, nil
	case "password":
		return ModePassword, nil
	}
	return ModePlain, fmt.Errorf("unknown display mode %q", s)
}

const passwordMask = '*'

// TextInputConfig configures a TextInput.
type TextInputConfig struct {
	Common
	Class       InputClass
	Mode        DisplayMode
	Placeholder string

	// OnAccept receives the text on Enter. The buffer is cleared only
	// when it returns nil; a nil OnAccept always clears.
	OnAccept func(text string) error
	OnChange func(text string) error
	OnCancel func(Context) error
}

// TextInput is an editable single-line field.
type TextInput struct {
	core
	class       InputClass
	mode        DisplayMode
	placeholder string
	text        []rune
	cursor      int

	onAccept func(string) error
	onChange func(string) error
	onCancel func(Context) error
}

// NewTextInput validates cfg and builds a TextInput.
func NewTextInput(cfg TextInputConfig) (*TextInput, error) {
	c, err := newCore("TextInput", cfg.Common)
	if err != nil {
		return nil, err
	}
	if _, ok := classNames[cfg.Class]; !ok {
		return nil, &ConfigError{Widget: cfg.Title, Field: "class", Reason: fmt.Sprintf("unknown value %d", int(cfg.Class))}
	}
	if cfg.Mode != ModePlain && cfg.Mode != ModePassword {
		return nil, &ConfigError{Widget: cfg.Title, Field: "mode", Reason: fmt.Sprintf("unknown value %d", int(cfg.Mode))}
	}
	return &TextInput{
		core:        c,
		class:       cfg.Class,
		mode:        cfg.Mode,
		placeholder: cfg.Placeholder,
		text:        make([]rune, 0, cfg.Rect.Width),
		onAccept:    cfg.OnAccept,
		onChange:    cfg.OnChange,
		onCancel:    cfg.OnCancel,
	}, nil
}

// Text returns the current buffer.
func (ti *TextInput) Text() string {
	return string(ti.text)
}

// CursorPos returns the cursor position in runes.
func (ti *TextInput) CursorPos() int {
	return ti.cursor
}

// Class returns the input class.
func (ti *TextInput) Class() InputClass {
	return ti.class
}

// Mode returns the display mode.
func (ti *TextInput) Mode() DisplayMode {
	return ti.mode
}

// SetText replaces the buffer, dropping rejected runes and anything past
// the width bound. OnChange is not fired.
func (ti *TextInput) SetText(s string) {
	ti.text = ti.text[:0]
	ti.cursor = 0
	for _, r := range s {
		ti.insert(r)
	}
}

func (ti *TextInput) handleKey(k key.Key, ctx Context) bool {
	switch k.Type {
	case key.KeyRune:
		if k.Alt || k.Ctrl {
			return false
		}
		// Rejected runes are still consumed.
		if ti.insert(k.Rune) {
			ti.changed()
		}
	case key.KeyBackspace:
		if ti.cursor > 0 {
			ti.text = append(ti.text[:ti.cursor-1], ti.text[ti.cursor:]...)
			ti.cursor--
			ti.changed()
		}
	case key.KeyDelete:
		if ti.cursor < len(ti.text) {
			ti.text = append(ti.text[:ti.cursor], ti.text[ti.cursor+1:]...)
			ti.changed()
		}
	case key.KeyLeft:
		ti.cursor = max(ti.cursor-1, 0)
	case key.KeyRight:
		ti.cursor = min(ti.cursor+1, len(ti.text))
	case key.KeyHome:
		ti.cursor = 0
	case key.KeyEnd:
		ti.cursor = len(ti.text)
	case key.KeyEnter:
		ti.accept()
	case key.KeyEscape:
		invoke(ti.Title(), "on-cancel", func() error { return callCtx(ti.onCancel, ctx) })
	default:
		return false
	}
	return true
}

// insert places r at the cursor if the class accepts it and the buffer
// still fits the field width.
func (ti *TextInput) insert(r rune) bool {
	if !ti.class.Accepts(r) {
		return false
	}
	next := make([]rune, 0, len(ti.text)+1)
	next = append(next, ti.text[:ti.cursor]...)
	next = append(next, r)
	next = append(next, ti.text[ti.cursor:]...)
	if ti.cells(next) > ti.Rect().Width {
		return false
	}
	ti.text = next
	ti.cursor++
	return true
}

// cells returns the display width of text as echoed.
func (ti *TextInput) cells(text []rune) int {
	if ti.mode == ModePassword {
		return len(text)
	}
	return width.VisibleWidth(string(text))
}

func (ti *TextInput) changed() {
	text := string(ti.text)
	invoke(ti.Title(), "on-change", func() error {
		if ti.onChange == nil {
			return nil
		}
		return ti.onChange(text)
	})
}

func (ti *TextInput) accept() {
	text := norm.NFC.String(string(ti.text))
	ok := invoke(ti.Title(), "on-accept", func() error {
		if ti.onAccept == nil {
			return nil
		}
		return ti.onAccept(text)
	})
	if ok {
		ti.text = ti.text[:0]
		ti.cursor = 0
	}
}

// Render draws the title row (when the field is at least two rows tall)
// and the field row. The focused field carries the cursor marker.
func (ti *TextInput) Render(out *tui.RenderBuffer, p theme.Palette) {
	w := ti.Rect().Width
	if ti.Rect().Height >= 2 {
		out.WriteLine(titleLine(ti.Title(), ti.Focused(), w, p))
	}

	if len(ti.text) == 0 {
		line := width.Fit(ti.placeholder, w)
		if ti.placeholder == "" {
			line = strings.Repeat(" ", w)
		}
		line = p.Placeholder.Apply(line)
		if ti.Focused() {
			line = tui.CursorMarker + line
		}
		out.WriteLine(line)
		return
	}

	echo := ti.text
	if ti.mode == ModePassword {
		echo = []rune(strings.Repeat(string(passwordMask), len(ti.text)))
	}

	var b strings.Builder
	b.WriteString(string(echo[:ti.cursor]))
	if ti.Focused() {
		b.WriteString(tui.CursorMarker)
	}
	b.WriteString(string(echo[ti.cursor:]))

	out.WriteLine(p.Input.Apply(width.Fit(b.String(), w)))
}
