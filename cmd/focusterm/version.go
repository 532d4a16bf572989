// ABOUTME: version and config commands
// ABOUTME: config prints the merged settings and any conflicting key bindings

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/focusterm/internal/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "focusterm %s (%s) built %s\n", version, commit, date)
		},
	}
}

func newConfigCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, config.Explain(root.settings))
			for _, c := range root.settings.Keybindings.Conflicts() {
				names := make([]string, len(c.Actions))
				for i, a := range c.Actions {
					names[i] = string(a)
				}
				fmt.Fprintf(out, "  conflict: %s -> %s\n", c.Key, strings.Join(names, ", "))
			}
		},
	}
}
