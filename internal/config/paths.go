// ABOUTME: Standard filesystem paths for focusterm configuration
// ABOUTME: Resolves ~/.focusterm/ for global and .focusterm/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const dirName = ".focusterm"

// GlobalDir returns the user-global config directory (~/.focusterm/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return globalDirFrom(home)
}

func globalDirFrom(home string) string {
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory (.focusterm/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalSettingsFile returns the path to the global settings file.
func GlobalSettingsFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// ProjectSettingsFile returns the path to the project settings file.
func ProjectSettingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "settings.json")
}

// ThemesDir returns the directory searched for named theme files.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}
