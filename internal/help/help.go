// ABOUTME: Help page rendering: builds a key reference in markdown and renders it with glamour
// ABOUTME: Rendered pages are cached by content hash and width

package help

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Binding is one row of the key reference.
type Binding struct {
	Keys   []string
	Action string
}

// Markdown builds a help page with a title, an optional intro paragraph
// and a table of bindings.
func Markdown(title, intro string, bindings []Binding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if intro != "" {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, bd := range bindings {
		keys := make([]string, len(bd.Keys))
		for i, k := range bd.Keys {
			keys[i] = "`" + k + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", strings.Join(keys, ", "), bd.Action)
	}
	return b.String()
}

// Renderer renders markdown to terminal lines with a fixed glamour style.
type Renderer struct {
	style string
	cache map[string][]string // "hash:width" -> lines
}

// NewRenderer creates a Renderer using a glamour standard style such as
// "dark", "light" or "notty". The style is fixed rather than detected
// because detection queries the terminal while the screen owns its input.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style, cache: make(map[string][]string)}
}

// StyleFor picks the glamour style matching a theme name.
func StyleFor(themeName string) string {
	switch themeName {
	case "light":
		return "light"
	case "monochrome":
		return "notty"
	default:
		return "dark"
	}
}

// Render returns md rendered for width columns, one string per line.
// When glamour fails the raw markdown lines are returned with the error.
func (r *Renderer) Render(md string, width int) ([]string, error) {
	if md == "" {
		return nil, nil
	}

	k := cacheKey(md, width)
	if cached, ok := r.cache[k]; ok {
		return cached, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return strings.Split(md, "\n"), fmt.Errorf("creating help renderer: %w", err)
	}

	rendered, err := tr.Render(md)
	if err != nil {
		return strings.Split(md, "\n"), fmt.Errorf("rendering help: %w", err)
	}

	// Trim the blank margin glamour adds around the document.
	rendered = strings.Trim(rendered, "\n")
	lines := strings.Split(rendered, "\n")

	r.cache[k] = lines
	return lines, nil
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
