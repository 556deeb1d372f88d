// Package dataset reads and writes the benchmark dataset: word and
// difficulty pairs in a flat TSV. The difficulty scale is a fixed
// ordered enumeration; records carrying anything else are rejected at
// load time so no consumer ever sees an unknown tier.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Label is one ordered difficulty tier.
type Label string

const (
	VeryEasy Label = "v_easy"
	Easy     Label = "easy"
	Medium   Label = "medium"
	Hard     Label = "hard"
	VeryHard Label = "v_hard"
)

var scale = []Label{VeryEasy, Easy, Medium, Hard, VeryHard}

// Labels returns the difficulty scale from least to most difficult.
func Labels() []Label {
	return append([]Label(nil), scale...)
}

// LabelStrings returns the scale as plain strings, in scale order.
func LabelStrings() []string {
	out := make([]string, len(scale))
	for i, l := range scale {
		out[i] = string(l)
	}
	return out
}

// Rank returns the position of l in the scale, or -1 for unknown
// labels.
func (l Label) Rank() int {
	for i, s := range scale {
		if l == s {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the ordered difficulty tiers.
func (l Label) Valid() bool {
	return l.Rank() >= 0
}

// ParseLabel normalizes and validates a difficulty string.
func ParseLabel(s string) (Label, error) {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown difficulty label %q", s)
	}
	return l, nil
}

// Entry is one dataset record.
type Entry struct {
	Word       string
	Difficulty Label
}

// Read parses a dataset TSV. The header must carry word and difficulty
// columns; rows with a missing word or an unknown label are skipped.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("dataset is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	wordCol := columnIndex(header, "word")
	diffCol := columnIndex(header, "difficulty")
	if wordCol < 0 || diffCol < 0 {
		return nil, errors.New(`dataset must include "word" and "difficulty" columns`)
	}

	var entries []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		if wordCol >= len(rec) || diffCol >= len(rec) {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(rec[wordCol]))
		if word == "" {
			continue
		}
		label, err := ParseLabel(rec[diffCol])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Word: word, Difficulty: label})
	}
	return entries, nil
}

// Load reads a dataset file from disk.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Write emits entries as a dataset TSV in the order given.
func Write(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"word", "difficulty"}); err != nil {
		return fmt.Errorf("write dataset header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Word, string(e.Difficulty)}); err != nil {
			return fmt.Errorf("write dataset row %q: %w", e.Word, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Sort orders entries by difficulty rank then word, the published
// dataset layout.
func Sort(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := entries[i].Difficulty.Rank(), entries[j].Difficulty.Rank()
		if ri != rj {
			return ri < rj
		}
		return entries[i].Word < entries[j].Word
	})
}

// Index maps word to difficulty. Later entries win duplicates.
func Index(entries []Entry) map[string]Label {
	idx := make(map[string]Label, len(entries))
	for _, e := range entries {
		idx[e.Word] = e.Difficulty
	}
	return idx
}

// ByDifficulty returns the entries carrying the given label, keeping
// their order.
func ByDifficulty(entries []Entry, label Label) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Difficulty == label {
			out = append(out, e)
		}
	}
	return out
}

// ReadWords extracts lowercased words from a tabular file. A header
// column named word is preferred; otherwise the first column is taken,
// skipping a leading header cell that spells word. Duplicates are
// kept.
func ReadWords(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read word column: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := columnIndex(rows[0], "word")
	start := 1
	if col < 0 {
		col = 0
		start = 0
		if strings.ToLower(strings.TrimSpace(rows[0][0])) == "word" {
			start = 1
		}
	}

	var words []string
	for _, rec := range rows[start:] {
		if col >= len(rec) {
			continue
		}
		w := strings.ToLower(strings.TrimSpace(rec[col]))
		if w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// LoadWords reads the word column of a tabular file from disk.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}

func columnIndex(fields []string, name string) int {
	for i, f := range fields {
		if strings.TrimSpace(f) == name {
			return i
		}
	}
	return -1
}
