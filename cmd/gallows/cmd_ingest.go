package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gallows/internal/simlog"
)

var ingestFlags struct {
	input  string
	output string
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Parse a raw simulation dump into a per-word TSV",
	Long: `Ingest extracts {"word", {n1, n2, ...}} records from a raw simulation
dump and writes one TSV row per word with its wrong-guess list and
mean. Number fragments that fail to parse are dropped, not fatal.`,
	RunE: runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&ingestFlags.input, "input", "", "Raw simulation dump")
	f.StringVar(&ingestFlags.output, "output", "simulation_parsed.tsv", "Path to output TSV")
	_ = ingestCmd.MarkFlagRequired("input")
}

func runIngest(cmd *cobra.Command, _ []string) error {
	entries, err := simlog.Load(ingestFlags.input)
	if err != nil {
		return err
	}
	if err := writeFile(ingestFlags.output, func(w io.Writer) error {
		return simlog.Write(w, entries)
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(entries), ingestFlags.output)
	return nil
}
