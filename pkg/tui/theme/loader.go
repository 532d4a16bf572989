// ABOUTME: JSON theme file loading with validation and default fallback
// ABOUTME: Values are "#rrggbb", "bg:#rrggbb" or raw SGR codes; unset roles inherit DefaultPalette

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// jsonPalette is the JSON-friendly representation of a Palette.
// Fields use snake_case to match the JSON file format.
type jsonPalette struct {
	Text   string `json:"text"`
	Title  string `json:"title"`
	Muted  string `json:"muted"`
	Accent string `json:"accent"`

	Error string `json:"error"`

	Focused       string `json:"focused"`
	Input         string `json:"input"`
	Placeholder   string `json:"placeholder"`
	Selection     string `json:"selection"`
	Button        string `json:"button"`
	ButtonFocused string `json:"button_focused"`
	Border        string `json:"border"`

	StatusBar string `json:"status_bar"`

	Bold    string `json:"bold"`
	Dim     string `json:"dim"`
	Inverse string `json:"inverse"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	p, err := convertPalette(jt.Palette, DefaultPalette())
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", jt.Name, err)
	}

	return &Theme{
		Name:    jt.Name,
		Palette: p,
	}, nil
}

// parseColor accepts "#rrggbb" (foreground), "bg:#rrggbb" (background)
// or a raw escape code.
func parseColor(s string) (Color, error) {
	if rest, ok := strings.CutPrefix(s, "bg:"); ok {
		return ParseBgHex(rest)
	}
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	return NewColor(s), nil
}

// convertPalette maps jsonPalette fields onto a Palette, using base for empty fields.
func convertPalette(jp jsonPalette, base Palette) (Palette, error) {
	p := base

	// Field names match between jsonPalette and Palette.
	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		jsonVal := jpv.Field(i).String()
		if jsonVal == "" {
			continue
		}
		c, err := parseColor(jsonVal)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", jpt.Field(i).Tag.Get("json"), err)
		}
		pf := pv.FieldByName(jpt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(c))
		}
	}

	return p, nil
}
