package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"gallows/internal/dataset"
	"gallows/internal/quantile"
	"gallows/internal/report"
	"gallows/internal/simlog"
)

var reclassifyFlags struct {
	simulation  string
	dataset     string
	cuts        string
	bins        int
	output      string
	emitDataset string
}

var reclassifyCmd = &cobra.Command{
	Use:   "reclassify",
	Short: "Reassign dataset difficulty labels from simulated mean wrong guesses",
	Long: `Reclassify takes the per-word means of a parsed simulation TSV and
rebins the words of an existing dataset. Thresholds come from quantiles
over the dataset words present in the simulation, or from --cuts.
Dataset words missing from the simulation keep their old label and are
reported; simulation words outside the dataset are ignored.`,
	RunE: runReclassify,
}

func init() {
	f := reclassifyCmd.Flags()
	f.StringVar(&reclassifyFlags.simulation, "simulation", "", "Parsed simulation TSV with per-word means")
	f.StringVar(&reclassifyFlags.dataset, "dataset", "", "Current word/difficulty dataset TSV")
	f.StringVar(&reclassifyFlags.cuts, "cuts", "", "Comma-separated custom thresholds (exactly 4 for the 5-tier scale)")
	f.IntVar(&reclassifyFlags.bins, "bins", 5, "Quantile bins when --cuts is not given")
	f.StringVar(&reclassifyFlags.output, "output", "reclassified_words.tsv", "Path to the reclassification report TSV")
	f.StringVar(&reclassifyFlags.emitDataset, "emit-dataset", "", "Optional path for a dataset TSV with the new labels")
	_ = reclassifyCmd.MarkFlagRequired("simulation")
	_ = reclassifyCmd.MarkFlagRequired("dataset")
}

func runReclassify(cmd *cobra.Command, _ []string) error {
	means, err := simlog.LoadMeans(reclassifyFlags.simulation)
	if err != nil {
		return err
	}
	entries, err := dataset.Load(reclassifyFlags.dataset)
	if err != nil {
		return err
	}
	current := dataset.Index(entries)

	// Intersect in dataset order so the missing-word preview is stable.
	present := make(map[string]float64, len(current))
	var missing []string
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Word] {
			continue
		}
		seen[e.Word] = true
		if m, ok := means[e.Word]; ok {
			present[e.Word] = m
		} else {
			missing = append(missing, e.Word)
		}
	}
	if len(present) == 0 {
		return fmt.Errorf("no dataset words found in %s", reclassifyFlags.simulation)
	}

	var cuts []float64
	if reclassifyFlags.cuts != "" {
		cuts, err = quantile.ParseCuts(reclassifyFlags.cuts)
		if err != nil {
			return err
		}
		if want := len(dataset.LabelStrings()) - 1; len(cuts) != want {
			return fmt.Errorf("--cuts must provide exactly %d thresholds; got %d", want, len(cuts))
		}
	} else {
		sample := make([]float64, 0, len(present))
		for _, m := range present {
			sample = append(sample, m)
		}
		cuts, err = quantile.Thresholds(sample, reclassifyFlags.bins)
		if err != nil {
			return err
		}
	}
	binner, err := newLabelBinner(cuts)
	if err != nil {
		return err
	}

	words := make([]string, 0, len(present))
	for w := range present {
		words = append(words, w)
	}
	sort.Strings(words)

	rows := make([]report.ReclassRow, len(words))
	newEntries := make([]dataset.Entry, len(words))
	for i, w := range words {
		label := binner.Label(present[w])
		rows[i] = report.ReclassRow{Word: w, Mean: present[w], Old: string(current[w]), New: label}
		newEntries[i] = dataset.Entry{Word: w, Difficulty: dataset.Label(label)}
	}

	if err := writeFile(reclassifyFlags.output, func(w io.Writer) error {
		return report.WriteReclass(w, rows)
	}); err != nil {
		return err
	}

	counts := make(map[string]int, len(binner.Labels()))
	changed := 0
	for _, r := range rows {
		counts[r.New]++
		if r.Change() == "changed" {
			changed++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Reclassification complete:")
	fmt.Fprintf(out, "  Words processed: %d\n", len(rows))
	if len(missing) > 0 {
		preview := strings.Join(missing[:min(5, len(missing))], ", ")
		suffix := ""
		if len(missing) > 5 {
			suffix = "..."
		}
		fmt.Fprintf(out, "  Words missing from simulation: %d (e.g., %s%s)\n", len(missing), preview, suffix)
	}
	fmt.Fprintln(out, "  New difficulty counts:")
	for _, label := range binner.Labels() {
		fmt.Fprintf(out, "    %-7s: %d\n", label, counts[label])
	}
	fmt.Fprintf(out, "  Changed assignments: %d\n", changed)
	fmt.Fprintf(out, "  Report written to: %s\n", reclassifyFlags.output)
	fmt.Fprintf(out, "  Thresholds used: %s\n", joinFloats(cuts))

	if reclassifyFlags.emitDataset != "" {
		dataset.Sort(newEntries)
		if err := writeFile(reclassifyFlags.emitDataset, func(w io.Writer) error {
			return dataset.Write(w, newEntries)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Dataset written to: %s\n", reclassifyFlags.emitDataset)
	}
	return nil
}
