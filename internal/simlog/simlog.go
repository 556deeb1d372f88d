// Package simlog ingests the published hangman simulation archive: a
// raw text dump of brace-delimited records, one per word, each pairing
// the word with the wrong-guess counts of its simulated games. The
// package turns the dump into a flat TSV keyed by word and reads the
// per-word means back out of it.
package simlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// entryRE captures records shaped like {"word", {1, 2, 3}}. The number
// list may span lines.
var entryRE = regexp.MustCompile(`\{\s*"([^"]+)"\s*,\s*\{([^}]*)\}\s*\}`)

// leadingInt keeps the numeric head of a fragment so a stray trailing
// token does not sink the whole record.
var leadingInt = regexp.MustCompile(`^-?\d+`)

// Entry is one simulated word with its wrong-guess counts, one per
// game.
type Entry struct {
	Word  string
	Wrong []int
}

// Mean returns the mean wrong-guess count, or zero when no games were
// recorded.
func (e Entry) Mean() float64 {
	if len(e.Wrong) == 0 {
		return 0
	}
	sum := 0
	for _, n := range e.Wrong {
		sum += n
	}
	return float64(sum) / float64(len(e.Wrong))
}

// Parse extracts every well-formed record from a raw simulation dump.
// Fragments that do not start with an integer are skipped.
func Parse(data []byte) []Entry {
	var entries []Entry
	for _, m := range entryRE.FindAllSubmatch(data, -1) {
		word := string(m[1])
		var wrong []int
		for _, part := range strings.Split(string(m[2]), ",") {
			s := leadingInt.FindString(strings.TrimSpace(part))
			if s == "" {
				continue
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				continue
			}
			wrong = append(wrong, n)
		}
		entries = append(entries, Entry{Word: word, Wrong: wrong})
	}
	return entries
}

// Load reads and parses a simulation dump from disk.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read simulation dump: %w", err)
	}
	return Parse(data), nil
}

// Write emits entries as the parsed simulation TSV: word, the bracketed
// wrong-guess list, and the mean to three decimals.
func Write(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"word", "wrong_guesses", "mean_wrong_guesses"}); err != nil {
		return fmt.Errorf("write simulation header: %w", err)
	}
	for _, e := range entries {
		row := []string{e.Word, renderWrong(e.Wrong), strconv.FormatFloat(e.Mean(), 'f', 3, 64)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write simulation row %q: %w", e.Word, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadMeans reads word to mean-wrong-guesses pairs from a parsed
// simulation TSV. Rows without a parseable mean are skipped; later
// duplicates win.
func ReadMeans(r io.Reader) (map[string]float64, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("simulation file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read simulation header: %w", err)
	}
	wordCol := columnIndex(header, "word")
	meanCol := columnIndex(header, "mean_wrong_guesses")
	if wordCol < 0 || meanCol < 0 {
		return nil, errors.New(`simulation file must include "word" and "mean_wrong_guesses" columns`)
	}

	means := make(map[string]float64)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read simulation row: %w", err)
		}
		if wordCol >= len(rec) || meanCol >= len(rec) {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(rec[wordCol]))
		if word == "" {
			continue
		}
		m, err := strconv.ParseFloat(strings.TrimSpace(rec[meanCol]), 64)
		if err != nil || math.IsNaN(m) {
			continue
		}
		means[word] = m
	}
	return means, nil
}

// LoadMeans reads per-word means from a parsed simulation TSV on disk.
func LoadMeans(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open simulation file: %w", err)
	}
	defer f.Close()
	return ReadMeans(f)
}

func renderWrong(wrong []int) string {
	parts := make([]string, len(wrong))
	for i, n := range wrong {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func columnIndex(fields []string, name string) int {
	for i, f := range fields {
		if strings.TrimSpace(f) == name {
			return i
		}
	}
	return -1
}
