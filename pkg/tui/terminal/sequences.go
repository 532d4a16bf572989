// ABOUTME: Literal terminal control sequences: alternate screen, text styles, cursor visibility.
// ABOUTME: MoveTo, FgRGB and BgRGB build positioning and 24-bit color sequences on demand.

package terminal

import "strconv"

// Screen and cursor control.
const (
	AltScreenEnter = "\x1b[?1049h"
	AltScreenLeave = "\x1b[?1049l"
	CursorHide     = "\x1b[?25l"
	CursorShow     = "\x1b[?25h"
	ClearScreen    = "\x1b[2J\x1b[H"
	EraseLine      = "\x1b[2K"

	// CSI 2026 synchronized output.
	SyncBegin = "\x1b[?2026h"
	SyncEnd   = "\x1b[?2026l"
)

// Input modes. Pasted text arrives wrapped in 200~/201~ markers; the Kitty
// flag 1 reports modified keys as CSI u. Terminals ignore what they lack.
const (
	BracketedPasteEnable  = "\x1b[?2004h"
	BracketedPasteDisable = "\x1b[?2004l"
	KittyKeysEnable       = "\x1b[>1u"
	KittyKeysDisable      = "\x1b[<u"
)

// Text styles.
const (
	StyleReset   = "\x1b[0m"
	StyleBold    = "\x1b[1m"
	StyleDim     = "\x1b[2m"
	StyleItalic  = "\x1b[3m"
	StyleInverse = "\x1b[7m"
)

// MoveTo returns the sequence placing the cursor at column x, row y.
// Coordinates are 0-based; the emitted CSI is 1-based.
func MoveTo(x, y int) string {
	x = max(x, 0)
	y = max(y, 0)
	var b [24]byte
	out := append(b[:0], "\x1b["...)
	out = strconv.AppendInt(out, int64(y+1), 10)
	out = append(out, ';')
	out = strconv.AppendInt(out, int64(x+1), 10)
	out = append(out, 'H')
	return string(out)
}

// FgRGB returns the 24-bit foreground color sequence for (r, g, b).
// Components outside [0, 255] are clamped.
func FgRGB(r, g, b int) string {
	return rgb(38, r, g, b)
}

// BgRGB returns the 24-bit background color sequence for (r, g, b).
func BgRGB(r, g, b int) string {
	return rgb(48, r, g, b)
}

func rgb(plane, r, g, b int) string {
	var buf [24]byte
	out := append(buf[:0], "\x1b["...)
	out = strconv.AppendInt(out, int64(plane), 10)
	out = append(out, ";2;"...)
	out = strconv.AppendInt(out, int64(clampByte(r)), 10)
	out = append(out, ';')
	out = strconv.AppendInt(out, int64(clampByte(g)), 10)
	out = append(out, ';')
	out = strconv.AppendInt(out, int64(clampByte(b)), 10)
	out = append(out, 'm')
	return string(out)
}

func clampByte(v int) int {
	return min(max(v, 0), 255)
}
