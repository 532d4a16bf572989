// ABOUTME: YAML screen definitions: title, help text, and widgets with kind, rect, class, mode, items
// ABOUTME: A Markdown file with YAML frontmatter uses the frontmatter as the definition and the body as help

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Widget kinds accepted in screen definitions.
const (
	KindText   = "text"
	KindList   = "list"
	KindButton = "button"
)

// ScreenDef describes one screen.
type ScreenDef struct {
	Title   string      `yaml:"title"`
	Help    string      `yaml:"help"`
	Widgets []WidgetDef `yaml:"widgets"`
}

// WidgetDef describes one widget. Fields that do not apply to Kind are ignored.
type WidgetDef struct {
	Kind        string   `yaml:"kind"`
	Title       string   `yaml:"title"`
	Rect        RectDef  `yaml:"rect"`
	Class       string   `yaml:"class,omitempty"`
	Mode        string   `yaml:"mode,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Items       []string `yaml:"items,omitempty"`
	Action      string   `yaml:"action,omitempty"`
}

// RectDef is a widget rectangle in cells; x and y are 0-based.
type RectDef struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoadScreen reads a screen definition from a .yaml file or a Markdown
// file with YAML frontmatter.
func LoadScreen(path string) (*ScreenDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading screen file: %w", err)
	}
	def, err := ParseScreen(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ParseScreen decodes a screen definition. Unknown fields are rejected.
func ParseScreen(content string) (*ScreenDef, error) {
	doc, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	var def ScreenDef
	dec := yaml.NewDecoder(strings.NewReader(doc))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse screen YAML: %w", err)
	}
	if def.Help == "" {
		def.Help = strings.TrimSpace(body)
	}

	for i, w := range def.Widgets {
		switch w.Kind {
		case KindText, KindList, KindButton:
		default:
			return nil, fmt.Errorf("widget %d (%q): unknown kind %q", i, w.Title, w.Kind)
		}
	}
	return &def, nil
}

// splitFrontmatter returns the YAML document and the Markdown body. Content
// without an opening delimiter is all YAML.
func splitFrontmatter(content string) (doc, body string, err error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return normalized, "", nil
	}

	rest := normalized[len(frontmatterDelimiter)+1:]
	if after, ok := strings.CutPrefix(rest, frontmatterDelimiter+"\n"); ok || rest == frontmatterDelimiter {
		return "", after, nil
	}

	before, after, ok := strings.Cut(rest, "\n"+frontmatterDelimiter)
	if !ok {
		return "", "", errors.New("unterminated frontmatter: missing closing ---")
	}
	return before, strings.TrimPrefix(after, "\n"), nil
}
