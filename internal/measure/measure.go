// Package measure produces the per-word difficulty rows: simulated
// wrong-guess counts for every strategy plus the closed-form
// structural scores. Words are independent, so the work fans out over
// a bounded worker group.
package measure

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gallows/internal/lexicon"
	"gallows/internal/logging"
	"gallows/internal/report"
	"gallows/internal/solver"
)

// Config tunes a measurement run.
type Config struct {
	// Workers bounds concurrent simulations; <= 0 means one per CPU.
	Workers int
	// Rules is the guessing environment handed to every simulation.
	Rules solver.Rules
	// OnWord, when set, is called once per finished word from worker
	// goroutines. It must be safe for concurrent use.
	OnWord func()
}

// Run measures every target word against the dictionary and returns
// one report row per target, in target order. Targets without any
// same-length dictionary words keep nil solver counts but still get
// structural scores.
func Run(ctx context.Context, targets []string, lex *lexicon.Lexicon, strats []solver.Strategy, cfg Config) ([]report.Row, error) {
	logger := logging.New("measure")

	inc := lexicon.NewIncidence(lex)
	rows := make([]report.Row, len(targets))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Info("measuring difficulty",
		"targets", len(targets), "dictionary", lex.Len(), "strategies", len(strats), "workers", workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, w := range targets {
		i, w := i, w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = measureWord(w, lex, inc, strats, cfg.Rules)
			if cfg.OnWord != nil {
				cfg.OnWord()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Play simulates every word against a single strategy, returning
// results in word order.
func Play(ctx context.Context, words []string, lex *lexicon.Lexicon, strat solver.Strategy, cfg Config) ([]solver.Result, error) {
	results := make([]solver.Result, len(words))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = solver.Simulate(w, lex, strat, cfg.Rules)
			if cfg.OnWord != nil {
				cfg.OnWord()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func measureWord(word string, lex *lexicon.Lexicon, inc *lexicon.Incidence, strats []solver.Strategy, rules solver.Rules) report.Row {
	row := report.Row{Word: word, Length: len(word)}
	if len(lex.Length(len(word))) > 0 {
		row.Solvers = make(map[string]*report.SolverCounts, len(strats))
		for _, s := range strats {
			res := solver.Simulate(word, lex, s, rules)
			row.Solvers[s.Code()] = &report.SolverCounts{Wrong: res.Wrong, Total: res.Total}
		}
	}
	row.Rare, row.Dup, row.Structural = Scores(word, inc)
	return row
}

// Scores computes the structural difficulty terms for word: rarity as
// the summed negative log incidence of its distinct letters at its
// length, the duplication factor length over distinct letters, and
// their quotient.
func Scores(word string, inc *lexicon.Incidence) (rare, dup, structural float64) {
	var seen [256]bool
	unique := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		unique++
		rare += -math.Log(inc.Probability(len(word), c))
	}
	den := unique
	if den < 1 {
		den = 1
	}
	dup = float64(len(word)) / float64(den)
	structural = rare / dup
	return rare, dup, structural
}
