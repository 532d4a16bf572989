// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Colors are raw SGR codes or 24-bit RGB; Palette maps widget roles to colors

package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mauromedda/focusterm/pkg/tui/terminal"
)

// Color represents a terminal color that can style text.
type Color struct {
	code string
	hex  string // "#rrggbb" when built from RGB components
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// RGB creates a 24-bit foreground color. Components are clamped to [0,255].
func RGB(r, g, b int) Color {
	return Color{code: terminal.FgRGB(r, g, b), hex: hexOf(r, g, b)}
}

// BgRGB creates a 24-bit background color. Components are clamped to [0,255].
func BgRGB(r, g, b int) Color {
	return Color{code: terminal.BgRGB(r, g, b), hex: hexOf(r, g, b)}
}

// ParseHex parses "#rrggbb" into a foreground color.
func ParseHex(s string) (Color, error) {
	r, g, b, err := splitHex(s)
	if err != nil {
		return Color{}, err
	}
	return RGB(r, g, b), nil
}

// ParseBgHex parses "#rrggbb" into a background color.
func ParseBgHex(s string) (Color, error) {
	r, g, b, err := splitHex(s)
	if err != nil {
		return Color{}, err
	}
	return BgRGB(r, g, b), nil
}

func splitHex(s string) (r, g, b int, err error) {
	digits, ok := strings.CutPrefix(s, "#")
	if !ok || len(digits) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}

func hexOf(r, g, b int) string {
	clamp := func(v int) int { return max(0, min(255, v)) }
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + terminal.StyleReset
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Hex returns "#rrggbb" for RGB colors and "" for raw SGR codes.
func (c Color) Hex() string {
	return c.hex
}

// Bold returns a new Color that prepends bold to the code.
func (c Color) Bold() Color {
	return Color{code: terminal.StyleBold + c.code, hex: c.hex}
}

// Dim returns a new Color that prepends dim to the code.
func (c Color) Dim() Color {
	return Color{code: terminal.StyleDim + c.code, hex: c.hex}
}

// Palette holds the semantic colors widgets and the screen draw with.
type Palette struct {
	// Text
	Text   Color
	Title  Color
	Muted  Color
	Accent Color

	// Semantic
	Error Color

	// Widgets
	Focused       Color // title of the focused widget
	Input         Color // text field contents
	Placeholder   Color // empty text field filler
	Selection     Color // highlighted list row
	Button        Color
	ButtonFocused Color
	Border        Color

	// Screen
	StatusBar Color

	// Formatting
	Bold    Color
	Dim     Color
	Inverse Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Text:   NewColor("\x1b[0m"),
		Title:  NewColor("\x1b[1m"),
		Muted:  NewColor("\x1b[2m"),
		Accent: NewColor("\x1b[38;5;208m"),

		Error: NewColor("\x1b[31m"),

		Focused:       NewColor("\x1b[1m\x1b[36m"),
		Input:         NewColor("\x1b[4m"),
		Placeholder:   NewColor("\x1b[2m"),
		Selection:     NewColor("\x1b[7m"),
		Button:        NewColor("\x1b[0m"),
		ButtonFocused: NewColor("\x1b[7m\x1b[1m"),
		Border:        NewColor("\x1b[90m"),

		StatusBar: NewColor("\x1b[7m"),

		Bold:    NewColor("\x1b[1m"),
		Dim:     NewColor("\x1b[2m"),
		Inverse: NewColor("\x1b[7m"),
	}
}
