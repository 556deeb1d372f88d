package wiring

import (
	"context"
	"fmt"
	"os"

	"gallows/internal/dataset"
	"gallows/internal/lexicon"
	"gallows/internal/measure"
	"gallows/internal/quantile"
	"gallows/internal/report"
	"gallows/internal/solver"
)

// Run executes the full measurement flow: Load → Measure → Report →
// Bin → Dataset. Every dictionary word is measured with all solver
// strategies; the difficulty report lands at reportPath, and the
// quantile-binned word/difficulty pairs land at datasetPath.
func Run(ctx context.Context, wordlistPath, reportPath, metric, fallback string, bins int, datasetPath string) error {
	lex, err := lexicon.Load(wordlistPath)
	if err != nil {
		return err
	}

	strats := solver.All()
	cfg := measure.Config{Rules: solver.DefaultRules()}
	rows, err := measure.Run(ctx, lex.Words(), lex, strats, cfg)
	if err != nil {
		return err
	}

	codes := make([]string, len(strats))
	for i, s := range strats {
		codes[i] = s.Code()
	}
	if err := writeReport(reportPath, codes, rows); err != nil {
		return err
	}

	values, err := readMetric(reportPath, metric, fallback)
	if err != nil {
		return err
	}
	sample := make([]float64, 0, len(values))
	for _, v := range values {
		sample = append(sample, v)
	}
	cuts, err := quantile.Thresholds(sample, bins)
	if err != nil {
		return err
	}
	labels := dataset.LabelStrings()
	if bins > len(labels) {
		return fmt.Errorf("cannot split into %d tiers; the scale has %d labels", bins, len(labels))
	}
	binner, err := quantile.NewBinner(cuts, labels[:bins])
	if err != nil {
		return err
	}

	entries := make([]dataset.Entry, 0, len(values))
	for w, v := range values {
		entries = append(entries, dataset.Entry{Word: w, Difficulty: dataset.Label(binner.Label(v))})
	}
	dataset.Sort(entries)
	return writeDataset(datasetPath, entries)
}

func writeReport(path string, codes []string, rows []report.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.Write(f, codes, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readMetric(path, metric, fallback string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()
	return report.ReadMetric(f, metric, fallback)
}

func writeDataset(path string, entries []dataset.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	if err := dataset.Write(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
