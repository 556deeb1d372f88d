package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gallows/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "gallows",
	Short: "Objective difficulty measurement for hangman words",
	Long: "Gallows grades how hard words are to guess: deterministic solvers\nplay every word, structural scores grade its letters, and quantile\nbinning turns the numbers into ordered difficulty tiers.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(binCmd)
	rootCmd.AddCommand(reclassifyCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(wordlistCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(costCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
