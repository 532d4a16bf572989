// ABOUTME: Lipgloss bridge for theme colors: parses SGR codes into lipgloss styles
// ABOUTME: Handles basic, 256-color and 24-bit parameters plus text attributes

package theme

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]+)m`)

// Style converts the color into an equivalent lipgloss style. Later
// sequences in the code win over earlier ones.
func (c Color) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, m := range sgrRe.FindAllStringSubmatch(c.code, -1) {
		s = applyParams(s, strings.Split(m[1], ";"))
	}
	return s
}

func applyParams(s lipgloss.Style, params []string) lipgloss.Style {
	if len(params) >= 2 && (params[0] == "38" || params[0] == "48") {
		spec := colorSpec(params[1:])
		if spec == "" {
			return s
		}
		if params[0] == "48" {
			return s.Background(lipgloss.Color(spec))
		}
		return s.Foreground(lipgloss.Color(spec))
	}

	for _, p := range params {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		switch {
		case n == 1:
			s = s.Bold(true)
		case n == 2:
			s = s.Faint(true)
		case n == 3:
			s = s.Italic(true)
		case n == 4:
			s = s.Underline(true)
		case n == 7:
			s = s.Reverse(true)
		case n >= 30 && n <= 37:
			s = s.Foreground(lipgloss.Color(strconv.Itoa(n - 30)))
		case n >= 90 && n <= 97:
			s = s.Foreground(lipgloss.Color(strconv.Itoa(n - 90 + 8)))
		case n >= 40 && n <= 47:
			s = s.Background(lipgloss.Color(strconv.Itoa(n - 40)))
		case n >= 100 && n <= 107:
			s = s.Background(lipgloss.Color(strconv.Itoa(n - 100 + 8)))
		}
	}
	return s
}

// colorSpec turns "5;N" into "N" and "2;R;G;B" into "#rrggbb".
func colorSpec(params []string) string {
	switch {
	case len(params) >= 2 && params[0] == "5":
		return params[1]
	case len(params) >= 4 && params[0] == "2":
		var rgb [3]int
		for i := range rgb {
			v, err := strconv.Atoi(params[i+1])
			if err != nil {
				return ""
			}
			rgb[i] = v
		}
		return hexOf(rgb[0], rgb[1], rgb[2])
	}
	return ""
}
