// ABOUTME: Binding names ("ctrl+c", "shift+tab") parsed into Keys for configurable key maps.
// ABOUTME: Encode turns a Key back into the canonical bytes a terminal would send.

package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// namedKeys maps lower-case binding names to keys without modifiers.
var namedKeys = map[string]Key{
	"enter":     {Type: KeyEnter},
	"return":    {Type: KeyEnter},
	"tab":       {Type: KeyTab},
	"shift+tab": {Type: KeyBackTab, Shift: true},
	"backtab":   {Type: KeyBackTab, Shift: true},
	"backspace": {Type: KeyBackspace},
	"delete":    {Type: KeyDelete},
	"up":        {Type: KeyUp},
	"down":      {Type: KeyDown},
	"left":      {Type: KeyLeft},
	"right":     {Type: KeyRight},
	"home":      {Type: KeyHome},
	"end":       {Type: KeyEnd},
	"pgup":      {Type: KeyPageUp},
	"pgdown":    {Type: KeyPageDown},
	"escape":    {Type: KeyEscape},
	"esc":       {Type: KeyEscape},
	"space":     {Type: KeyRune, Rune: ' '},
}

// ParseBinding parses a binding string such as "ctrl+c", "shift+tab",
// "alt+x", "space" or a single character.
func ParseBinding(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Key{}, fmt.Errorf("empty key binding")
	}
	if k, ok := namedKeys[name]; ok {
		return k, nil
	}

	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		r, size := utf8.DecodeRuneInString(rest)
		if size != len(rest) {
			return Key{}, fmt.Errorf("unknown key binding %q", s)
		}
		kt, ok := ctrlLetters[r]
		if !ok {
			return Key{}, fmt.Errorf("unsupported control key %q", s)
		}
		return Key{Type: kt, Ctrl: true}, nil
	}

	if rest, ok := strings.CutPrefix(name, "alt+"); ok {
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || size != len(rest) || r < 0x20 || r > 0x7e {
			return Key{}, fmt.Errorf("unknown key binding %q", s)
		}
		return Key{Type: KeyRune, Rune: r, Alt: true}, nil
	}

	// Single characters keep their case from the original string.
	raw := strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(raw)
	if size == len(raw) && r != utf8.RuneError {
		return Key{Type: KeyRune, Rune: r}, nil
	}
	return Key{}, fmt.Errorf("unknown key binding %q", s)
}

// Matches reports whether k is the same key event as binding. Rune keys
// compare rune and Alt; other keys compare only their type so that a
// Ctrl+C decoded from the legacy byte and from a Kitty sequence match.
func (k Key) Matches(binding Key) bool {
	if k.Type != binding.Type {
		return false
	}
	if k.Type == KeyRune {
		return k.Rune == binding.Rune && k.Alt == binding.Alt
	}
	return true
}

// encoded holds the canonical byte sequence for each non-rune key type.
var encoded = map[KeyType]string{
	KeyEnter:     "\r",
	KeyTab:       "\t",
	KeyBackTab:   "\x1b[Z",
	KeyBackspace: "\x7f",
	KeyDelete:    "\x1b[3~",
	KeyUp:        "\x1b[A",
	KeyDown:      "\x1b[B",
	KeyRight:     "\x1b[C",
	KeyLeft:      "\x1b[D",
	KeyHome:      "\x1b[H",
	KeyEnd:       "\x1b[F",
	KeyPageUp:    "\x1b[5~",
	KeyPageDown:  "\x1b[6~",
	KeyEscape:    "\x1b",
	KeyCtrlC:     "\x03",
	KeyCtrlD:     "\x04",
	KeyCtrlG:     "\x07",
	KeyCtrlL:     "\x0c",
	KeyCtrlO:     "\x0f",
	KeyCtrlQ:     "\x11",
	KeyCtrlR:     "\x12",
}

// Encode returns the legacy byte sequence for k such that
// ParseKey(Encode(k)) yields an equivalent key. Unknown keys encode to "".
func Encode(k Key) string {
	if k.Type == KeyRune {
		if k.Alt {
			return "\x1b" + string(k.Rune)
		}
		return string(k.Rune)
	}
	return encoded[k.Type]
}
