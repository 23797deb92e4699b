package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/pumplemma/engine"
	"github.com/coregx/pumplemma/language"
	"github.com/coregx/pumplemma/render"
)

var (
	samplesCount      int
	samplesProperties bool
)

var samplesCmd = &cobra.Command{
	Use:   "samples <language>",
	Short: "Show sample strings belonging to a language",
	Long: `Show strings that belong to the given language, and optionally an
empirical property summary derived from a batch of test strings.

Examples:
  pumplemma samples "a^n b^n"
  pumplemma samples L8 --properties`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := resolvePattern(args[0])
		if err != nil {
			return err
		}

		for _, s := range language.Samples(pattern, samplesCount) {
			if s == "" {
				s = "ε"
			}
			fmt.Println(s)
		}

		if samplesProperties {
			batch := language.TestStrings(pattern, 1, 10)
			report := engine.New().AnalyzeProperties(pattern, batch)
			fmt.Println()
			fmt.Println(render.New().Properties(report))
		}
		return nil
	},
}

func init() {
	samplesCmd.Flags().IntVarP(&samplesCount, "count", "n", 5, "number of samples to show")
	samplesCmd.Flags().BoolVar(&samplesProperties, "properties", false, "analyze language properties over a test batch")
}
