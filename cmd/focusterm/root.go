// ABOUTME: Root command: loads settings, sets up logging, and runs a screen on the controlling terminal
// ABOUTME: The screen comes from --screen or the built-in relation record form

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/focusterm/internal/config"
	"github.com/mauromedda/focusterm/internal/journal"
	"github.com/mauromedda/focusterm/internal/log"
	"github.com/mauromedda/focusterm/pkg/tui/screen"
	"github.com/mauromedda/focusterm/pkg/tui/terminal"
)

type rootFlags struct {
	screenPath string
	themeName  string
	logFile    string
	logLevel   string
	record     string

	settings *config.Settings
	closers  []io.Closer
}

func newRootCmd() *cobra.Command {
	return newCommand(&rootFlags{})
}

// newCommand builds the command tree around flags. Cobra skips the
// post-run hook when RunE fails, so each failing path tears down itself.
func newCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focusterm",
		Short: "Run a focus-driven form in the terminal",
		Long: `focusterm draws a screen of text fields, lists and buttons and moves
keyboard focus between them. Tab and Shift+Tab change focus, Ctrl+G shows
help, Ctrl+C quits and prints the values that were entered.`,
		Example: `  focusterm
  focusterm --screen ./order.yaml --theme light
  focusterm --record session.jsonl
  focusterm replay session.jsonl`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return flags.setup()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			flags.teardown()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer flags.teardown()
			return flags.run(cmd)
		},
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.screenPath, "screen", "", "screen definition (.yaml, or .md with YAML frontmatter); default is the built-in relation record")
	pf.StringVar(&flags.themeName, "theme", "", "theme name (default, dark, light, monochrome) or path to a JSON theme file")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file; logs are discarded otherwise")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.record, "record", "", "journal every key to this JSON lines file")

	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads settings and routes logs away from the terminal the screen
// owns. On failure it releases whatever it opened.
func (f *rootFlags) setup() (err error) {
	defer func() {
		if err != nil {
			f.teardown()
		}
	}()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	f.settings, err = config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log.SetOutput(io.Discard)
	if f.logFile != "" {
		lf, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		f.closers = append(f.closers, lf)
		log.SetOutput(lf)
	}

	level := f.logLevel
	if level == "" {
		level = f.settings.LogLevel
	}
	if level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			return err
		}
		log.SetLevel(l)
	}

	for _, c := range f.settings.Keybindings.Conflicts() {
		log.Warn("keybindings: %s is bound to %v", c.Key, c.Actions)
	}
	return nil
}

// teardown is idempotent.
func (f *rootFlags) teardown() {
	log.SetOutput(io.Discard)
	for _, c := range f.closers {
		if err := c.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	f.closers = nil
}

func (f *rootFlags) run(cmd *cobra.Command) error {
	form, err := loadForm(f.screenPath)
	if err != nil {
		return err
	}
	th, err := resolveTheme(f.themeName, f.settings)
	if err != nil {
		return err
	}
	opts, err := screenOptions(f.settings, form, th)
	if err != nil {
		return err
	}

	if f.record != "" {
		jf, err := os.Create(f.record)
		if err != nil {
			return fmt.Errorf("creating journal: %w", err)
		}
		f.closers = append(f.closers, jf)
		opts = append(opts, screen.WithRecorder(journal.NewWriter(jf)))
	}

	term := terminal.NewProcessTerminal(os.Stdin, os.Stdout)
	defer terminal.RestoreOnPanic(term)

	s := screen.New(term, os.Stdin, form.Ring, opts...)
	if err := s.Run(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), form.Summary())
	return nil
}
