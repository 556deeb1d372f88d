package solver

import "fmt"

// Request is one turn's view of a game: the masked board, the letters
// known to be absent, the candidate words still consistent with both,
// and the alphabet that orders tie-breaks and fallbacks.
type Request struct {
	Board      Board
	Wrong      LetterSet
	Candidates []string
	Alphabet   string
}

// Guessed returns every letter tried so far, right or wrong.
func (r Request) Guessed() LetterSet {
	return r.Board.Revealed() | r.Wrong
}

// eligible returns the alphabet letters not yet tried, in alphabet
// order. Non-letter bytes in the alphabet are ignored.
func (r Request) eligible() []byte {
	guessed := r.Guessed()
	out := make([]byte, 0, len(r.Alphabet))
	for i := 0; i < len(r.Alphabet); i++ {
		c := r.Alphabet[i]
		if c < 'a' || c > 'z' || guessed.Has(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Strategy picks the next letter to guess. ok is false when the rule
// has no usable signal, in which case the simulation falls back to the
// first untried alphabet letter.
type Strategy interface {
	Code() string
	Choose(req Request) (guess byte, ok bool)
}

// FreqRaw scores each eligible letter by its total occurrence count
// across the candidates, counting repeats within a word every time.
// Highest count wins, ties break to the earlier letter; all-zero
// counts mean no signal.
type FreqRaw struct{}

// Code identifies the strategy in reports and flags.
func (FreqRaw) Code() string { return "freq_raw" }

func (FreqRaw) Choose(req Request) (byte, bool) {
	var counts [26]int
	for _, w := range req.Candidates {
		for i := 0; i < len(w); i++ {
			if c := w[i]; c >= 'a' && c <= 'z' {
				counts[c-'a']++
			}
		}
	}
	best, ok := maxBy(req.eligible(), func(c byte) int { return counts[c-'a'] })
	if !ok || counts[best-'a'] <= 0 {
		return 0, false
	}
	return best, true
}

// Coverage scores each eligible letter by the number of candidate
// words containing it at least once. Highest count wins, ties break to
// the earlier letter; all-zero counts mean no signal.
type Coverage struct{}

// Code identifies the strategy in reports and flags.
func (Coverage) Code() string { return "coverage" }

func (Coverage) Choose(req Request) (byte, bool) {
	var counts [26]int
	for _, w := range req.Candidates {
		set := WordLetters(w)
		for c := byte('a'); c <= 'z'; c++ {
			if set.Has(c) {
				counts[c-'a']++
			}
		}
	}
	best, ok := maxBy(req.eligible(), func(c byte) int { return counts[c-'a'] })
	if !ok || counts[best-'a'] <= 0 {
		return 0, false
	}
	return best, true
}

// InfoGain partitions the candidates, per eligible letter, by the set
// of positions at which the letter occurs (the empty set is a miss)
// and scores the letter Σ|partition|², proportional to the expected
// candidate count surviving the guess. Lowest score wins, ties break
// to the earlier letter. Identical scores across every eligible letter
// mean no signal.
type InfoGain struct{}

// Code identifies the strategy in reports and flags.
func (InfoGain) Code() string { return "info_gain" }

func (InfoGain) Choose(req Request) (byte, bool) {
	letters := req.eligible()
	if len(letters) == 0 {
		return 0, false
	}

	type scored struct {
		letter byte
		score  int
	}
	list := make([]scored, len(letters))
	var mask []byte
	for i, c := range letters {
		parts := make(map[string]int)
		for _, w := range req.Candidates {
			mask = mask[:0]
			for j := 0; j < len(w); j++ {
				if w[j] == c {
					mask = append(mask, byte(j))
				}
			}
			parts[string(mask)]++
		}
		score := 0
		for _, n := range parts {
			score += n * n
		}
		list[i] = scored{letter: c, score: score}
	}

	flat := true
	for _, s := range list[1:] {
		if s.score != list[0].score {
			flat = false
			break
		}
	}
	if flat {
		return 0, false
	}
	best, _ := minBy(list, func(s scored) int { return s.score })
	return best.letter, true
}

// All returns the built-in strategies in report column order.
func All() []Strategy {
	return []Strategy{FreqRaw{}, Coverage{}, InfoGain{}}
}

// ForCode returns the strategy registered under code.
func ForCode(code string) (Strategy, error) {
	for _, s := range All() {
		if s.Code() == code {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown strategy %q", code)
}
