package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/golasco/golasco/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive marketplace",
	Long: `Open the interactive terminal marketplace.

Browse properties, sign in, follow your dashboard, and book, all in one
screen. Booking payments still go through the payment provider prompts.

Examples:
  golasco browse`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()

		model := tui.NewModel(app)
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run marketplace: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
