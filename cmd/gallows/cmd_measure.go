package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"gallows/internal/dataset"
	"gallows/internal/lexicon"
	"gallows/internal/measure"
	"gallows/internal/report"
	"gallows/internal/solver"
)

var measureFlags struct {
	wordlist string
	targets  string
	output   string
	workers  int
	progress bool
}

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Play every target word with the solver strategies and write the difficulty report",
	Long: `Measure loads a dictionary, plays each target word against the three
deterministic solver strategies, computes the structural letter
scores, and writes one TSV row per word. Targets default to the whole
dictionary; pass --targets to measure a word column from another file.`,
	RunE: runMeasure,
}

func init() {
	f := measureCmd.Flags()
	f.StringVar(&measureFlags.wordlist, "wordlist", "", "Dictionary file, one word per line")
	f.StringVar(&measureFlags.targets, "targets", "", "Tabular file with a word column (default: every dictionary word)")
	f.StringVar(&measureFlags.output, "output", "difficulty_report.tsv", "Path to output TSV")
	f.IntVar(&measureFlags.workers, "workers", 0, "Parallel simulations (0 = one per CPU)")
	f.BoolVar(&measureFlags.progress, "progress", false, "Show a progress bar")
	_ = measureCmd.MarkFlagRequired("wordlist")
}

func runMeasure(cmd *cobra.Command, _ []string) error {
	lex, err := lexicon.Load(measureFlags.wordlist)
	if err != nil {
		return err
	}

	targets := lex.Words()
	if measureFlags.targets != "" {
		targets, err = dataset.LoadWords(measureFlags.targets)
		if err != nil {
			return err
		}
	}

	cfg := measure.Config{Workers: measureFlags.workers, Rules: solver.DefaultRules()}
	if measureFlags.progress {
		bar := progressbar.Default(int64(len(targets)), "measuring")
		cfg.OnWord = func() { bar.Add(1) }
	}

	strats := solver.All()
	rows, err := measure.Run(cmd.Context(), targets, lex, strats, cfg)
	if err != nil {
		return err
	}

	codes := strategyCodes(strats)
	if err := writeFile(measureFlags.output, func(w io.Writer) error {
		return report.Write(w, codes, rows)
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(rows), measureFlags.output)
	fmt.Fprintf(cmd.OutOrStdout(), "Columns: %s\n", strings.Join(report.Header(codes), ", "))
	return nil
}
