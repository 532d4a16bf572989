// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the "config" CLI subcommand to show merged settings

package config

import (
	"fmt"
	"strings"
)

// Explain renders a human-readable summary of the effective settings.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== General ===\n")
	if s.Theme != "" {
		fmt.Fprintf(&b, "  Theme:      %s\n", s.Theme)
	}
	if s.ThemeFile != "" {
		fmt.Fprintf(&b, "  ThemeFile:  %s\n", s.ThemeFile)
	}
	if s.LogLevel != "" {
		fmt.Fprintf(&b, "  LogLevel:   %s\n", s.LogLevel)
	}
	fmt.Fprintf(&b, "  StatusBar:  %v\n", s.StatusBarEnabled())
	if s.HelpPosition != "" {
		fmt.Fprintf(&b, "  HelpAt:     %s\n", s.HelpPosition)
	}
	b.WriteString("\n")

	b.WriteString("=== Keybindings ===\n")
	for _, action := range Actions {
		fmt.Fprintf(&b, "  %-5s %s\n", action+":", strings.Join(s.Keybindings.Get(action), ", "))
	}

	return b.String()
}
