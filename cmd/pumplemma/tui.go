package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/coregx/pumplemma/cmd/pumplemma/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive explorer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExplorer()
	},
}

// runExplorer starts the bubbletea program. Also the root command's
// default behavior.
func runExplorer() error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	program := tea.NewProgram(ui.New(catalog), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("explorer: %w", err)
	}
	return nil
}
