// ABOUTME: Decodes escape sequences into keys: plain CSI/SS3 navigation and Kitty CSI u with modifiers
// ABOUTME: One parameter parser serves both encodings; key releases are dropped

package key

import (
	"strconv"
	"strings"
)

// Modifier bits; the wire value is bits+1.
const (
	modShift = 1 << iota
	modAlt
	modCtrl
)

// navFinals are the final bytes of cursor and navigation keys.
var navFinals = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeCodes are the numeric codes of CSI n ~ keys. Home and End arrive
// as 1/4 from tmux, screen and the Linux console, and as 7/8 from rxvt.
var tildeCodes = map[int]KeyType{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// ctrlLetters are the Ctrl+letter keys with their own type.
var ctrlLetters = map[rune]KeyType{
	'c': KeyCtrlC,
	'd': KeyCtrlD,
	'g': KeyCtrlG,
	'l': KeyCtrlL,
	'o': KeyCtrlO,
	'q': KeyCtrlQ,
	'r': KeyCtrlR,
}

// csi is a parsed control sequence. Each parameter holds its
// colon-separated sub-parameters; a missing value parses as 0.
type csi struct {
	params [][]int
	final  byte
}

// param returns sub-parameter j of parameter i, or 0 when absent.
func (c csi) param(i, j int) int {
	if i >= len(c.params) || j >= len(c.params[i]) {
		return 0
	}
	return c.params[i][j]
}

// parseCSI splits ESC [ params final. Private-mode prefixes are not keys
// and are rejected.
func parseCSI(data string) (csi, bool) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return csi{}, false
	}
	body, final := data[2:len(data)-1], data[len(data)-1]
	c := csi{final: final}
	if body == "" {
		return c, true
	}
	for _, p := range strings.Split(body, ";") {
		var subs []int
		for _, s := range strings.Split(p, ":") {
			if s == "" {
				subs = append(subs, 0)
				continue
			}
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return csi{}, false
			}
			subs = append(subs, n)
		}
		c.params = append(c.params, subs)
	}
	return c, true
}

// parseEscape decodes an escape sequence: SS3 first, then CSI.
func parseEscape(data string) (Key, bool) {
	if len(data) == 3 && data[1] == 'O' {
		if kt, ok := navFinals[data[2]]; ok {
			return Key{Type: kt}, true
		}
		return Key{}, false
	}
	c, ok := parseCSI(data)
	if !ok {
		return Key{}, false
	}
	return c.key()
}

// key maps the sequence to a key. Parameter 1 carries the modifiers and,
// after a colon, the Kitty event type.
func (c csi) key() (Key, bool) {
	mods := max(c.param(1, 0)-1, 0)
	if c.param(1, 1) == 3 {
		return Key{}, false
	}

	var k Key
	switch c.final {
	case 'u':
		cp := rune(c.param(0, 0))
		if cp == 0 {
			return Key{}, false
		}
		k = codepointKey(cp, mods)
	case '~':
		kt, ok := tildeCodes[c.param(0, 0)]
		if !ok {
			return Key{}, false
		}
		k = Key{Type: kt}
	case 'Z':
		if len(c.params) > 0 {
			return Key{}, false
		}
		return Key{Type: KeyBackTab, Shift: true}, true
	default:
		kt, ok := navFinals[c.final]
		if !ok {
			return Key{}, false
		}
		// CSI 1 ; mods A carries modifiers; CSI A has no parameters.
		if len(c.params) == 1 {
			return Key{}, false
		}
		k = Key{Type: kt}
	}

	k.Shift = k.Shift || mods&modShift != 0
	k.Alt = k.Alt || mods&modAlt != 0
	k.Ctrl = k.Ctrl || mods&modCtrl != 0
	return k, true
}

// codepointKey maps a Kitty key codepoint to a key before modifiers apply.
func codepointKey(cp rune, mods int) Key {
	if mods&modCtrl != 0 {
		if kt, ok := ctrlLetters[cp]; ok {
			return Key{Type: kt}
		}
	}
	switch cp {
	case '\r':
		return Key{Type: KeyEnter}
	case '\t':
		if mods&modShift != 0 {
			return Key{Type: KeyBackTab}
		}
		return Key{Type: KeyTab}
	case 0x7f:
		return Key{Type: KeyBackspace}
	case 0x1b:
		return Key{Type: KeyEscape}
	default:
		return Key{Type: KeyRune, Rune: cp}
	}
}
