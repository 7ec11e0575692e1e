package cmd

import (
	"fmt"

	"github.com/balaji-matta18/spendbuddy/internal/tui"
	"github.com/balaji-matta18/spendbuddy/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	env, err := newEnvDeferred()
	if err != nil {
		return err
	}

	theme.SetActive(env.cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(env.store, env.client, env.cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
