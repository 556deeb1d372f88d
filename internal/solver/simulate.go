// Package solver plays deterministic Hangman games: it filters a
// same-length candidate dictionary against everything a game has
// revealed and picks the next guess with one of several pure letter
// heuristics. Equal inputs always produce equal games; every tie-break
// is a total order over the alphabet.
package solver

import "gallows/internal/lexicon"

// Rules fixes the guessing environment for a simulation.
type Rules struct {
	// Alphabet orders tie-breaks and the no-signal fallback scan. A
	// game ends once every alphabet letter has been tried.
	Alphabet string
}

// DefaultRules plays the classic game over the lowercase ASCII
// alphabet.
func DefaultRules() Rules {
	return Rules{Alphabet: "abcdefghijklmnopqrstuvwxyz"}
}

// Result describes one finished game.
type Result struct {
	Word   string
	Total  int  // letters tried
	Wrong  int  // tries that revealed nothing
	Solved bool // board fully revealed before the alphabet ran out
}

// Simulate plays target to completion under one strategy. The
// candidate pool starts as every same-length dictionary word and is
// refiltered after each guess; when the strategy has no signal the
// first untried alphabet letter is guessed instead. Guesses are never
// repeated, so the game ends within one alphabet's worth of turns.
func Simulate(target string, lex *lexicon.Lexicon, strat Strategy, rules Rules) Result {
	res := Result{Word: target}
	board := NewBoard(len(target))
	candidates := lex.Length(len(target))
	var wrong LetterSet

	for !board.Solved() {
		// The opening guess sees the unfiltered pool: with nothing
		// revealed and nothing wrong there is nothing to prune on.
		if res.Total > 0 {
			candidates = Filter(candidates, board, wrong)
		}

		req := Request{Board: board, Wrong: wrong, Candidates: candidates, Alphabet: rules.Alphabet}
		guess, ok := strat.Choose(req)
		if !ok || guess < 'a' || guess > 'z' || req.Guessed().Has(guess) {
			guess, ok = firstUnused(rules.Alphabet, req.Guessed())
			if !ok {
				return res
			}
		}

		res.Total++
		if next, hit := board.reveal(target, guess); hit {
			board = next
		} else {
			wrong = wrong.Add(guess)
			res.Wrong++
		}
	}
	res.Solved = true
	return res
}

// firstUnused returns the first alphabet letter outside used.
func firstUnused(alphabet string, used LetterSet) (byte, bool) {
	for i := 0; i < len(alphabet); i++ {
		if c := alphabet[i]; c >= 'a' && c <= 'z' && !used.Has(c) {
			return c, true
		}
	}
	return 0, false
}
