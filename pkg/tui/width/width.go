// ABOUTME: Column measurement and fitting for styled text: width, strip, truncate, pad, center, slice
// ABOUTME: Every function treats escape sequences as zero-width and keeps them in the output

package width

import "strings"

const ellipsis = "…"

// VisibleWidth returns the number of terminal columns s occupies.
func VisibleWidth(s string) int {
	if plainASCII(s) {
		return len(s)
	}
	n := 0
	walk(s, func(c cell) bool {
		n += c.cols
		return true
	})
	return n
}

// plainASCII reports whether s is printable ASCII only, where width is length.
func plainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// StripANSI removes escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	walk(s, func(c cell) bool {
		if !c.esc {
			b.WriteString(c.text)
		}
		return true
	})
	return b.String()
}

// TruncateToWidth cuts s to at most maxWidth columns. A cut string ends
// with a style reset and an ellipsis, which takes the last column.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}

	limit := maxWidth - 1
	var b strings.Builder
	walk(s, func(c cell) bool {
		if c.col+c.cols > limit {
			return false
		}
		b.WriteString(c.text)
		return true
	})
	b.WriteString("\x1b[0m")
	b.WriteString(ellipsis)
	return b.String()
}

// Fit truncates s to maxWidth columns and pads it with spaces to exactly
// maxWidth.
func Fit(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	s = TruncateToWidth(s, maxWidth)
	if pad := maxWidth - VisibleWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Center pads s on both sides to maxWidth columns, extra space going right.
func Center(s string, maxWidth int) string {
	w := VisibleWidth(s)
	if w >= maxWidth {
		return Fit(s, maxWidth)
	}
	left := (maxWidth - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", maxWidth-w-left)
}

// SliceByColumn returns the clusters of s that lie inside columns
// [start, end), together with every escape sequence, so styling carries
// across the cut. The cells of a wide cluster cut by an edge become spaces,
// so the result never spans more than end-start columns.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}
	var b strings.Builder
	walk(s, func(c cell) bool {
		switch {
		case c.esc:
			b.WriteString(c.text)
		case c.col >= start && c.col < end && c.col+c.cols <= end:
			b.WriteString(c.text)
		default:
			if n := min(c.col+c.cols, end) - max(c.col, start); n > 0 {
				b.WriteString(strings.Repeat(" ", n))
			}
		}
		return true
	})
	return b.String()
}
