// ABOUTME: Tests for help page building and glamour rendering
// ABOUTME: Uses the notty style so output is free of color codes

package help

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	t.Parallel()

	md := Markdown("Keys", "Move between fields with Tab.", []Binding{
		{Keys: []string{"tab"}, Action: "next field"},
		{Keys: []string{"ctrl+c", "ctrl+q"}, Action: "quit"},
	})

	for _, want := range []string{
		"# Keys\n",
		"Move between fields with Tab.",
		"| `tab` | next field |",
		"| `ctrl+c`, `ctrl+q` | quit |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewRenderer("notty")
	md := Markdown("Keys", "", []Binding{{Keys: []string{"tab"}, Action: "next field"}})

	lines, err := r.Render(md, 40)
	if err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Keys") || !strings.Contains(joined, "next field") {
		t.Errorf("rendered help missing content:\n%s", joined)
	}

	again, err := r.Render(md, 40)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(lines) || &again[0] != &lines[0] {
		t.Error("second render should come from the cache")
	}
}

func TestRenderer_Empty(t *testing.T) {
	t.Parallel()

	lines, err := NewRenderer("").Render("", 40)
	if err != nil || lines != nil {
		t.Errorf("Render(\"\") = %v, %v; want nil, nil", lines, err)
	}
}

func TestStyleFor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"light":      "light",
		"monochrome": "notty",
		"dark":       "dark",
		"default":    "dark",
		"":           "dark",
	}
	for name, want := range tests {
		if got := StyleFor(name); got != want {
			t.Errorf("StyleFor(%q) = %q, want %q", name, got, want)
		}
	}
}
