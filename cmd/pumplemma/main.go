// Command pumplemma is the terminal front end for the pumping-lemma
// exploration engine. It collects a language pattern, a test string and a
// pumping length, runs the lemma engine, and renders the verdict. Run
// without arguments to start the interactive explorer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coregx/pumplemma/language"
)

var (
	// Global flags
	verbose     bool
	catalogPath string

	// Logger, initialized before any subcommand runs.
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pumplemma",
	Short: "Explore the pumping lemma on a catalogue of formal languages",
	Long: `pumplemma applies the pumping lemma (regular or context-free variant)
to a test string drawn from a fixed catalogue of formal languages.

It enumerates candidate decompositions in a deterministic order, pumps
each one at a fixed set of repetition counts, checks membership of every
pumped string, and reports the first satisfying decomposition or the
first counterexample.

Run without arguments to start the interactive explorer.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExplorer()
	},
}

// loadCatalog resolves the --catalog flag, falling back to the embedded
// default catalog.
func loadCatalog() (*language.Catalog, error) {
	if catalogPath == "" {
		return language.DefaultCatalog(), nil
	}
	return language.LoadCatalog(catalogPath)
}

// resolvePattern accepts either a catalog ID ("L4") or a language
// definition ("a^n b^n", "anbn", "(ab)*").
func resolvePattern(input string) (language.Pattern, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return "", err
	}
	if entry, ok := catalog.Lookup(input); ok {
		return entry.Pattern, nil
	}
	p, err := language.Parse(input)
	if err != nil {
		return "", fmt.Errorf("%w: %q (try a catalog ID such as L4, or a definition such as \"a^n b^n\")", err, input)
	}
	return p, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a language catalog YAML (default: embedded catalog)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
