package lexicon

// ProbabilityFloor is the minimum letter probability the incidence
// table ever reports. Lengths or letters the dictionary never exhibits
// floor here instead of zeroing out downstream log terms.
const ProbabilityFloor = 1e-9

// Incidence maps (word length, letter) to the fraction of words of
// that length containing the letter at least once. Repeats within a
// word count once.
type Incidence struct {
	byLength map[int]*[26]float64
}

// NewIncidence computes the per-length letter incidence table for lex.
func NewIncidence(lex *Lexicon) *Incidence {
	inc := &Incidence{byLength: make(map[int]*[26]float64)}
	for _, n := range lex.Lengths() {
		words := lex.Length(n)
		denom := float64(len(words))
		if denom < 1 {
			denom = 1
		}
		var counts [26]int
		for _, w := range words {
			var seen [26]bool
			for i := 0; i < len(w); i++ {
				seen[w[i]-'a'] = true
			}
			for c, hit := range seen {
				if hit {
					counts[c]++
				}
			}
		}
		probs := new([26]float64)
		for c, k := range counts {
			probs[c] = float64(k) / denom
		}
		inc.byLength[n] = probs
	}
	return inc
}

// Probability reports how often letter c appears in words of the given
// length. Unknown lengths, letters outside a-z, and values below the
// floor all return ProbabilityFloor.
func (inc *Incidence) Probability(length int, c byte) float64 {
	if c < 'a' || c > 'z' {
		return ProbabilityFloor
	}
	probs, ok := inc.byLength[length]
	if !ok {
		return ProbabilityFloor
	}
	p := probs[c-'a']
	if p < ProbabilityFloor {
		return ProbabilityFloor
	}
	return p
}
