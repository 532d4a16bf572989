// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Text:   RGB(0xe6, 0xe6, 0xe6),
			Title:  RGB(0xff, 0xff, 0xff).Bold(),
			Muted:  RGB(0x80, 0x80, 0x80),
			Accent: RGB(0xff, 0xaf, 0x00),

			Error: RGB(0xff, 0x5f, 0x5f),

			Focused:       RGB(0x87, 0xd7, 0xff).Bold(),
			Input:         BgRGB(0x30, 0x30, 0x30),
			Placeholder:   RGB(0x58, 0x58, 0x58),
			Selection:     BgRGB(0x30, 0x30, 0x30),
			Button:        RGB(0xbc, 0xbc, 0xbc),
			ButtonFocused: RGB(0xff, 0xaf, 0x00).Bold(),
			Border:        RGB(0x58, 0x58, 0x58),

			StatusBar: BgRGB(0x26, 0x26, 0x26),

			Bold:    NewColor("\x1b[1m"),
			Dim:     NewColor("\x1b[2m"),
			Inverse: NewColor("\x1b[7m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Text:   RGB(0x1c, 0x1c, 0x1c),
			Title:  RGB(0x00, 0x00, 0x00).Bold(),
			Muted:  RGB(0x8a, 0x8a, 0x8a),
			Accent: RGB(0xd7, 0x5f, 0x00),

			Error: RGB(0xd7, 0x00, 0x00),

			Focused:       RGB(0x00, 0x5f, 0xaf).Bold(),
			Input:         BgRGB(0xe4, 0xe4, 0xe4),
			Placeholder:   RGB(0xb2, 0xb2, 0xb2),
			Selection:     BgRGB(0xd0, 0xd0, 0xd0),
			Button:        RGB(0x44, 0x44, 0x44),
			ButtonFocused: RGB(0xd7, 0x5f, 0x00).Bold(),
			Border:        RGB(0xb2, 0xb2, 0xb2),

			StatusBar: BgRGB(0xda, 0xda, 0xda),

			Bold:    NewColor("\x1b[1m"),
			Dim:     NewColor("\x1b[2m"),
			Inverse: NewColor("\x1b[7m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Text:   NewColor("\x1b[0m"),
			Title:  NewColor("\x1b[1m"),
			Muted:  NewColor("\x1b[2m"),
			Accent: NewColor("\x1b[1m"),

			Error: NewColor("\x1b[1m\x1b[4m"),

			Focused:       NewColor("\x1b[1m\x1b[4m"),
			Input:         NewColor("\x1b[4m"),
			Placeholder:   NewColor("\x1b[2m"),
			Selection:     NewColor("\x1b[7m"),
			Button:        NewColor("\x1b[0m"),
			ButtonFocused: NewColor("\x1b[7m"),
			Border:        NewColor("\x1b[2m"),

			StatusBar: NewColor("\x1b[7m"),

			Bold:    NewColor("\x1b[1m"),
			Dim:     NewColor("\x1b[2m"),
			Inverse: NewColor("\x1b[7m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
