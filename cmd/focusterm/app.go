// ABOUTME: Shared wiring for run and replay: screen loading, theme resolution, screen options, button actions
// ABOUTME: The built-in relation record screen is embedded from screens/relation.md

package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/focusterm/internal/config"
	"github.com/mauromedda/focusterm/internal/log"
	"github.com/mauromedda/focusterm/pkg/tui/screen"
	"github.com/mauromedda/focusterm/pkg/tui/theme"
	"github.com/mauromedda/focusterm/pkg/tui/widget"
)

//go:embed screens/relation.md
var relationScreen string

// actions are the button actions a screen definition may name.
var actions = map[string]config.Action{
	"submit": func(ctx widget.Context, f *config.Form) error {
		var parts []string
		for _, fld := range f.Values() {
			if fld.Value == "" {
				ctx.SetStatus(fld.Title + " is empty")
				return nil
			}
			parts = append(parts, fld.Value)
		}
		log.Info("submit %q: %s", f.Title, strings.Join(parts, ", "))
		ctx.SetStatus("saved: " + strings.Join(parts, " / "))
		return nil
	},
	"reset": func(ctx widget.Context, f *config.Form) error {
		f.Reset()
		ctx.SetStatus("cleared")
		return nil
	},
}

// loadForm builds the form from path, or the built-in screen when path is empty.
func loadForm(path string) (*config.Form, error) {
	var (
		def *config.ScreenDef
		err error
	)
	if path == "" {
		def, err = config.ParseScreen(relationScreen)
	} else {
		def, err = config.LoadScreen(path)
	}
	if err != nil {
		return nil, err
	}
	return config.BuildForm(def, actions)
}

// resolveTheme picks the theme from the flag, then settings. A name is a
// built-in theme, a JSON file path, or a file in the themes directory.
func resolveTheme(flagValue string, s *config.Settings) (*theme.Theme, error) {
	name := flagValue
	if name == "" && s.ThemeFile != "" {
		return loadThemeFile(s.ThemeFile)
	}
	if name == "" {
		name = s.Theme
	}
	if name == "" {
		return theme.Current(), nil
	}

	if th := theme.Builtin(name); th != nil {
		return th, nil
	}
	if strings.HasSuffix(name, ".json") {
		return loadThemeFile(name)
	}
	path := filepath.Join(config.ThemesDir(), name+".json")
	if _, err := os.Stat(path); err == nil {
		return loadThemeFile(path)
	}
	return nil, fmt.Errorf("unknown theme %q (built-in: %s)", name, strings.Join(theme.BuiltinNames(), ", "))
}

func loadThemeFile(path string) (*theme.Theme, error) {
	th, err := theme.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if th.Name == "" {
		th.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return th, nil
}

// screenOptions turns settings and the form into screen options.
func screenOptions(s *config.Settings, f *config.Form, th *theme.Theme) ([]screen.Option, error) {
	keys, err := s.Keybindings.Resolve()
	if err != nil {
		return nil, err
	}
	helpAt, err := s.HelpOverlayPosition()
	if err != nil {
		return nil, err
	}
	theme.Set(th)

	opts := []screen.Option{
		screen.WithTheme(th),
		screen.WithQuitKeys(keys[config.ActionQuit]...),
		screen.WithFocusKeys(keys[config.ActionNext], keys[config.ActionPrev]),
		screen.WithHelpKey(keys[config.ActionHelp]...),
		screen.WithHelpPosition(helpAt),
		screen.WithStatusBar(s.StatusBarEnabled()),
		screen.WithData(f),
	}
	if f.Help != "" {
		opts = append(opts, screen.WithHelp(f.Help))
	}
	return opts, nil
}
