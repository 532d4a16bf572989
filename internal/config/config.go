// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON-based configuration: theme, log level, status bar, help placement, key bindings

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mauromedda/focusterm/pkg/tui"
)

// Settings holds the merged configuration.
type Settings struct {
	Theme     string `json:"theme,omitempty"`
	ThemeFile string `json:"theme_file,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
	StatusBar *bool  `json:"status_bar,omitempty"`
	// HelpPosition anchors the help page: "center" (default), "top" or "bottom".
	HelpPosition string      `json:"help_position,omitempty"`
	Keybindings  Keybindings `json:"keybindings,omitempty"`
}

// StatusBarEnabled reports whether the status bar is on. Unset means on.
func (s *Settings) StatusBarEnabled() bool {
	return s.StatusBar == nil || *s.StatusBar
}

// HelpOverlayPosition maps HelpPosition to an overlay position.
func (s *Settings) HelpOverlayPosition() (tui.OverlayPosition, error) {
	switch s.HelpPosition {
	case "", "center":
		return tui.OverlayCenter, nil
	case "top":
		return tui.OverlayTop, nil
	case "bottom":
		return tui.OverlayBottom, nil
	default:
		return tui.OverlayCenter, fmt.Errorf("help_position %q: want center, top or bottom", s.HelpPosition)
	}
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return LoadWithHome(projectRoot, home)
}

// LoadWithHome is Load with an explicit home directory.
func LoadWithHome(projectRoot, home string) (*Settings, error) {
	global, err := loadFile(filepath.Join(globalDirFrom(home), "settings.json"))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectSettingsFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if _, err := merged.Keybindings.Resolve(); err != nil {
		return nil, err
	}
	if _, err := merged.HelpOverlayPosition(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; key bindings merge per action.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.ThemeFile != "" {
		result.ThemeFile = project.ThemeFile
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.HelpPosition != "" {
		result.HelpPosition = project.HelpPosition
	}
	if project.StatusBar != nil {
		on := *project.StatusBar
		result.StatusBar = &on
	}

	if len(project.Keybindings) > 0 {
		kb := make(Keybindings, len(global.Keybindings)+len(project.Keybindings))
		for action, keys := range global.Keybindings {
			kb[action] = keys
		}
		for action, keys := range project.Keybindings {
			kb[action] = keys
		}
		result.Keybindings = kb
	}

	return &result
}
