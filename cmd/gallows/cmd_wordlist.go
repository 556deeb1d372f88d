package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gallows/internal/dataset"
)

var wordlistFlags struct {
	input  string
	output string
}

var wordlistCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Extract a deduplicated wordlist from a tabular word column",
	Long: `Wordlist pulls the word column out of a tabular file (a difficulty
report, a dataset, a parsed simulation) and writes the words one per
line, lowercased, first occurrence kept.`,
	RunE: runWordlist,
}

func init() {
	f := wordlistCmd.Flags()
	f.StringVar(&wordlistFlags.input, "input", "", "Tabular file with a word column")
	f.StringVar(&wordlistFlags.output, "output", "wordlist.txt", "Path to output wordlist")
	_ = wordlistCmd.MarkFlagRequired("input")
}

func runWordlist(cmd *cobra.Command, _ []string) error {
	words, err := dataset.LoadWords(wordlistFlags.input)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		unique = append(unique, w)
	}

	if err := writeFile(wordlistFlags.output, func(w io.Writer) error {
		for _, word := range unique {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d unique words to %s\n", len(unique), wordlistFlags.output)
	return nil
}
