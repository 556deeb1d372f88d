// Package lexicon loads and indexes the flat dictionary every other
// stage reads from. A Lexicon is immutable once built; the incidence
// table derived from it is the only statistical input the structural
// scorer needs.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Clean normalizes a raw token to dictionary form: trimmed, lower-cased,
// pure ASCII letters. ok is false for empty tokens and anything carrying
// digits, punctuation, or non-ASCII bytes.
func Clean(token string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(token))
	if w == "" {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", false
		}
	}
	return w, true
}

// Lexicon is the candidate universe: deduplicated dictionary words
// partitioned by length.
type Lexicon struct {
	words    []string
	byLength map[int][]string
}

// New builds a Lexicon from raw tokens. Tokens are normalized with
// Clean, rejects dropped, duplicates kept once in first-seen order.
func New(tokens []string) *Lexicon {
	lex := &Lexicon{byLength: make(map[int][]string)}
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		w, ok := Clean(t)
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		lex.words = append(lex.words, w)
		lex.byLength[len(w)] = append(lex.byLength[len(w)], w)
	}
	return lex
}

// Read parses a whitespace- or newline-delimited word file.
func Read(r io.Reader) (*Lexicon, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan wordlist: %w", err)
	}
	return New(tokens), nil
}

// Load reads a dictionary file from disk.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Words returns every dictionary word in first-seen order.
func (l *Lexicon) Words() []string { return l.words }

// Len reports the number of distinct words.
func (l *Lexicon) Len() int { return len(l.words) }

// Length returns the words of exactly n letters.
func (l *Lexicon) Length(n int) []string { return l.byLength[n] }

// Lengths returns the distinct word lengths in ascending order.
func (l *Lexicon) Lengths() []int {
	out := make([]int, 0, len(l.byLength))
	for n := range l.byLength {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
