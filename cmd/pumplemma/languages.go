package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/pumplemma/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the predefined language catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		fmt.Printf("%-4s | %-12s | %-16s | %s\n", "ID", "class", "pattern", "description")
		fmt.Println(strings.Repeat("-", 72))
		for _, entry := range catalog.Entries() {
			fmt.Printf("%-4s | %-12s | %-16s | %s\n",
				entry.ID, entry.Class, entry.Pattern, entry.Description)
		}

		fmt.Println()
		for _, entry := range catalog.Entries() {
			if c, ok := language.ComplexityOf(entry.Pattern); ok {
				fmt.Printf("%s: %s (%s); grammar: %s\n",
					entry.ID, c.Level, c.Automaton, c.Grammar)
			}
		}
		return nil
	},
}
