package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"gallows/internal/dataset"
	"gallows/internal/quantile"
	"gallows/internal/report"
)

var binFlags struct {
	input       string
	metric      string
	fallback    string
	bins        int
	output      string
	emitDataset string
}

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "Split a difficulty report metric into quantile difficulty tiers",
	Long: `Bin reads one metric column from a difficulty report, computes
quantile thresholds over the available values, and assigns each word
an ordered difficulty label. Words whose metric cell is empty fall
back to the fallback column; words with neither value are left out.`,
	RunE: runBin,
}

func init() {
	f := binCmd.Flags()
	f.StringVar(&binFlags.input, "input", "difficulty_report.tsv", "Difficulty report TSV")
	f.StringVar(&binFlags.metric, "metric", "wrong_coverage", "Metric column to bin on")
	f.StringVar(&binFlags.fallback, "fallback-metric", "wrong_freq_raw", "Fallback column when the metric cell is empty")
	f.IntVar(&binFlags.bins, "bins", 5, "Number of quantile bins")
	f.StringVar(&binFlags.output, "output", "difficulty_binned.tsv", "Path to output TSV")
	f.StringVar(&binFlags.emitDataset, "emit-dataset", "", "Optional path for a word/difficulty dataset TSV")
}

func runBin(cmd *cobra.Command, _ []string) error {
	in, err := os.Open(binFlags.input)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer in.Close()

	values, err := report.ReadMetric(in, binFlags.metric, binFlags.fallback)
	if err != nil {
		return err
	}

	sample := make([]float64, 0, len(values))
	for _, v := range values {
		sample = append(sample, v)
	}
	cuts, err := quantile.Thresholds(sample, binFlags.bins)
	if err != nil {
		return err
	}
	binner, err := newLabelBinner(cuts)
	if err != nil {
		return err
	}

	words := make([]string, 0, len(values))
	for w := range values {
		words = append(words, w)
	}
	sort.Strings(words)

	rows := make([]report.BinnedRow, len(words))
	entries := make([]dataset.Entry, len(words))
	for i, w := range words {
		label := binner.Label(values[w])
		rows[i] = report.BinnedRow{Word: w, Value: values[w], Label: label}
		entries[i] = dataset.Entry{Word: w, Difficulty: dataset.Label(label)}
	}

	if err := writeFile(binFlags.output, func(w io.Writer) error {
		return report.WriteBinned(w, binFlags.metric, rows)
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(rows), binFlags.output)
	fmt.Fprintf(cmd.OutOrStdout(), "Thresholds used (interior cuts): %s\n", joinFloats(cuts))

	if binFlags.emitDataset != "" {
		dataset.Sort(entries)
		if err := writeFile(binFlags.emitDataset, func(w io.Writer) error {
			return dataset.Write(w, entries)
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dataset written to %s\n", binFlags.emitDataset)
	}
	return nil
}
