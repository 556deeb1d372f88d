package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"gallows/internal/cost"
	"gallows/internal/format"
)

var costFlags struct {
	usage    string
	games    int
	pricing  string
	markdown bool
}

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Project benchmark spend for a target game count",
	Long: `Cost scales the token usage measured in a pilot run up to a target
number of games and prices it per model. The embedded rate card covers
the usual models; pass --pricing to override it.`,
	RunE: runCost,
}

func init() {
	f := costCmd.Flags()
	f.StringVar(&costFlags.usage, "usage", "", "Usage YAML from a pilot run")
	f.IntVar(&costFlags.games, "games", 0, "Target number of games")
	f.StringVar(&costFlags.pricing, "pricing", "", "Pricing YAML (default: embedded rate card)")
	f.BoolVar(&costFlags.markdown, "markdown", false, "Render the table as Markdown")
	_ = costCmd.MarkFlagRequired("usage")
	_ = costCmd.MarkFlagRequired("games")
}

func runCost(cmd *cobra.Command, _ []string) error {
	if costFlags.games <= 0 {
		return fmt.Errorf("--games must be positive; got %d", costFlags.games)
	}

	summaries, err := cost.LoadUsage(costFlags.usage)
	if err != nil {
		return err
	}
	pricings, err := cost.DefaultPricing()
	if costFlags.pricing != "" {
		pricings, err = cost.LoadPricing(costFlags.pricing)
	}
	if err != nil {
		return err
	}

	usage := cost.MergeUsage(summaries)

	// The rate card lists more models than any one pilot touches; price
	// only what was measured, but insist every measured model is priced.
	priced := make(map[string]bool, len(pricings))
	relevant := make([]cost.Pricing, 0, len(usage))
	for _, p := range pricings {
		if _, ok := usage[p.Model]; ok {
			relevant = append(relevant, p)
			priced[p.Model] = true
		}
	}
	unpriced := make([]string, 0, len(usage))
	for model := range usage {
		if !priced[model] {
			unpriced = append(unpriced, model)
		}
	}
	if len(unpriced) > 0 {
		sort.Strings(unpriced)
		return fmt.Errorf("no pricing for model %q", unpriced[0])
	}

	estimates, err := cost.Project(usage, costFlags.games, relevant)
	if err != nil {
		return err
	}

	mode := format.ASCII
	if costFlags.markdown {
		mode = format.Markdown
	}
	tbl := format.NewTable(mode)
	tbl.Header("Provider", "Model", "Input Tokens", "Output Tokens", "Input Cost", "Output Cost", "Total")
	tbl.Columns(
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
		format.ColumnConfig{Number: 6, Align: format.AlignRight},
		format.ColumnConfig{Number: 7, Align: format.AlignRight},
	)
	var total float64
	currency := ""
	for _, e := range estimates {
		tbl.Row(
			e.Provider,
			e.Model,
			format.FmtTokens(e.InputTokens),
			format.FmtTokens(e.OutputTokens),
			format.FmtMoney(e.InputCost, e.Currency),
			format.FmtMoney(e.OutputCost, e.Currency),
			format.FmtMoney(e.TotalCost(), e.Currency),
		)
		total += e.TotalCost()
		currency = e.Currency
	}
	tbl.Footer("", "", "", "", "", "Projected", format.FmtMoney(total, currency))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Projected cost for %d games:\n", costFlags.games)
	fmt.Fprintln(out, tbl.String())
	return nil
}
