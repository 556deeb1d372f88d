package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gallows/internal/dataset"
	"gallows/internal/format"
	"gallows/internal/quantile"
	"gallows/internal/solver"
)

// writeFile creates path, streams write into it, and surfaces the
// close error so short writes are not reported as success.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func strategyCodes(strats []solver.Strategy) []string {
	codes := make([]string, len(strats))
	for i, s := range strats {
		codes[i] = s.Code()
	}
	return codes
}

// joinFloats renders threshold lists with the three decimals the
// report columns carry, so console and TSV numbers match.
func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = format.FmtFloat3(v)
	}
	return strings.Join(parts, ", ")
}

// newLabelBinner pairs interior cuts with a prefix of the difficulty
// scale. More tiers than the scale has labels is a configuration
// error.
func newLabelBinner(cuts []float64) (*quantile.Binner, error) {
	labels := dataset.LabelStrings()
	if len(cuts)+1 > len(labels) {
		return nil, fmt.Errorf("cannot split into %d tiers; the scale has %d labels", len(cuts)+1, len(labels))
	}
	return quantile.NewBinner(cuts, labels[:len(cuts)+1])
}
