// ABOUTME: replay command: feeds a recorded key journal to a screen on a virtual terminal
// ABOUTME: Prints the final form values, and the last frame with --show-screen

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/focusterm/internal/journal"
	"github.com/mauromedda/focusterm/pkg/tui/screen"
	"github.com/mauromedda/focusterm/pkg/tui/terminal"
)

type replayFlags struct {
	rows, cols int
	showScreen bool
}

func newReplayCmd(root *rootFlags) *cobra.Command {
	var flags replayFlags

	cmd := &cobra.Command{
		Use:   "replay <journal>",
		Short: "Replay a recorded key journal without a terminal",
		Long: `Replay reads a journal written with --record and feeds its keys to the
same screen on a virtual terminal. The values entered are printed when the
journal ends or a quit key is replayed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer root.teardown()
			return runReplay(cmd.OutOrStdout(), root, flags, args[0])
		},
	}

	cmd.Flags().IntVar(&flags.rows, "rows", 24, "virtual terminal rows")
	cmd.Flags().IntVar(&flags.cols, "cols", 80, "virtual terminal columns")
	cmd.Flags().BoolVar(&flags.showScreen, "show-screen", false, "also print the raw terminal output")

	return cmd
}

func runReplay(out io.Writer, root *rootFlags, flags replayFlags, path string) error {
	jf, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer jf.Close()

	entries, err := journal.Read(jf)
	if err != nil {
		return err
	}

	form, err := loadForm(root.screenPath)
	if err != nil {
		return err
	}
	th, err := resolveTheme(root.themeName, root.settings)
	if err != nil {
		return err
	}
	opts, err := screenOptions(root.settings, form, th)
	if err != nil {
		return err
	}

	term := terminal.NewVirtualTerminal(flags.rows, flags.cols)
	s := screen.New(term, journal.Replay(entries), form.Ring, opts...)
	if err := s.Run(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if flags.showScreen {
		fmt.Fprintf(out, "%q\n", term.Output())
	}
	fmt.Fprintf(out, "replayed %d keys\n", len(entries))
	if st := s.Status(); st != "" {
		fmt.Fprintf(out, "status: %s\n", st)
	}
	fmt.Fprint(out, form.Summary())
	return nil
}
