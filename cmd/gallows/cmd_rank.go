package main

import (
	"fmt"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"gallows/internal/display"
	"gallows/internal/format"
	"gallows/internal/lexicon"
	"gallows/internal/measure"
	"gallows/internal/solver"
)

var rankFlags struct {
	wordlist string
	length   int
	strategy string
	markdown bool
	workers  int
	progress bool
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every word of one length by how badly a solver plays it",
	Long: `Rank plays every dictionary word of the given length with a single
strategy and prints a table ordered worst-first: most wrong guesses,
then most total guesses, then alphabetically.`,
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.StringVar(&rankFlags.wordlist, "wordlist", "", "Dictionary file, one word per line")
	f.IntVar(&rankFlags.length, "length", 0, "Word length to play")
	f.StringVar(&rankFlags.strategy, "strategy", "freq_raw", "Solver strategy (freq_raw, coverage, info_gain)")
	f.BoolVar(&rankFlags.markdown, "markdown", false, "Render the table as Markdown")
	f.IntVar(&rankFlags.workers, "workers", 0, "Parallel simulations (0 = one per CPU)")
	f.BoolVar(&rankFlags.progress, "progress", false, "Show a progress bar")
	_ = rankCmd.MarkFlagRequired("wordlist")
	_ = rankCmd.MarkFlagRequired("length")
}

func runRank(cmd *cobra.Command, _ []string) error {
	strat, err := solver.ForCode(rankFlags.strategy)
	if err != nil {
		return err
	}
	lex, err := lexicon.Load(rankFlags.wordlist)
	if err != nil {
		return err
	}

	words := lex.Length(rankFlags.length)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "There are %d words to play.\n", len(words))
	if len(words) == 0 {
		return nil
	}
	fmt.Fprintf(out, "Strategy: %s\n", display.StrategyWithCode(strat.Code()))

	cfg := measure.Config{Workers: rankFlags.workers, Rules: solver.DefaultRules()}
	if rankFlags.progress {
		bar := progressbar.Default(int64(len(words)), "playing")
		cfg.OnWord = func() { bar.Add(1) }
	}
	results, err := measure.Play(cmd.Context(), words, lex, strat, cfg)
	if err != nil {
		return err
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Wrong != results[j].Wrong {
			return results[i].Wrong > results[j].Wrong
		}
		if results[i].Total != results[j].Total {
			return results[i].Total > results[j].Total
		}
		return results[i].Word < results[j].Word
	})

	mode := format.ASCII
	if rankFlags.markdown {
		mode = format.Markdown
	}
	tbl := format.NewTable(mode)
	tbl.Header("Word", "Guesses", "Wrong")
	tbl.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
	)
	for _, r := range results {
		tbl.Row(r.Word, r.Total, r.Wrong)
	}
	fmt.Fprintln(out, tbl.String())
	return nil
}
