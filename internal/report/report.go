// Package report reads and writes the tab-separated files the
// difficulty pipeline exchanges: the per-word difficulty report, the
// binned difficulty output, and the reclassification report.
//
// Floats render with three decimals, solver counts as plain integers.
// A row never carries fabricated values: metrics that were not
// computed stay empty cells.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SolverCounts holds one strategy's outcome for a word.
type SolverCounts struct {
	Wrong int
	Total int
}

// Row is one difficulty-report record: the word, its simulated
// wrong-guess counts keyed by strategy code, and the structural
// scores. Solvers is nil when the dictionary held no same-length
// words to play against.
type Row struct {
	Word       string
	Length     int
	Solvers    map[string]*SolverCounts
	Rare       float64
	Dup        float64
	Structural float64
}

// Header returns the difficulty report columns for the given strategy
// codes.
func Header(codes []string) []string {
	h := []string{"word", "length"}
	for _, c := range codes {
		h = append(h, "wrong_"+c)
	}
	return append(h, "rare_score", "dup_factor", "structural_score")
}

// Write emits rows as a difficulty report TSV.
func Write(w io.Writer, codes []string, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(Header(codes)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		rec := []string{row.Word, strconv.Itoa(row.Length)}
		for _, c := range codes {
			if sc := row.Solvers[c]; sc != nil {
				rec = append(rec, strconv.Itoa(sc.Wrong))
			} else {
				rec = append(rec, "")
			}
		}
		rec = append(rec, f3(row.Rare), f3(row.Dup), f3(row.Structural))
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %q: %w", row.Word, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadMetric extracts word -> value for one metric column of a
// difficulty report. An empty or non-numeric cell falls back to the
// fallback column when one is named; rows with no usable value are
// skipped. A missing metric column or a report yielding no values at
// all is an error.
func ReadMetric(r io.Reader, metric, fallback string) (map[string]float64, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	wordCol := indexOf(header, "word")
	if wordCol < 0 {
		return nil, errors.New(`input must include a "word" column`)
	}
	metricCol := indexOf(header, metric)
	if metricCol < 0 {
		return nil, fmt.Errorf("input has no %q column", metric)
	}
	fallbackCol := -1
	if fallback != "" {
		fallbackCol = indexOf(header, fallback)
	}

	out := make(map[string]float64)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		word := strings.ToLower(strings.TrimSpace(cell(rec, wordCol)))
		if word == "" {
			continue
		}
		v, ok := numericCell(rec, metricCol)
		if !ok {
			v, ok = numericCell(rec, fallbackCol)
		}
		if !ok {
			continue
		}
		out[word] = v
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no numeric values found for metric %q", metric)
	}
	return out, nil
}

// BinnedRow pairs a word's metric value with its assigned label.
type BinnedRow struct {
	Word  string
	Value float64
	Label string
}

// WriteBinned emits the binning output: the word, the metric under its
// original column name, and the assigned label.
func WriteBinned(w io.Writer, metric string, rows []BinnedRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"word", metric, "label"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Word, f3(row.Value), row.Label}); err != nil {
			return fmt.Errorf("write row %q: %w", row.Word, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReclassRow records one word's difficulty reassignment.
type ReclassRow struct {
	Word string
	Mean float64
	Old  string // empty when the word carried no prior label
	New  string
}

// Change classifies the reassignment: "new" for a word without a prior
// label, "same" when the label held, "changed" otherwise.
func (r ReclassRow) Change() string {
	switch {
	case r.Old == "":
		return "new"
	case r.Old == r.New:
		return "same"
	default:
		return "changed"
	}
}

// WriteReclass emits the reclassification report TSV.
func WriteReclass(w io.Writer, rows []ReclassRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	header := []string{"word", "mean_wrong_guesses", "old_difficulty", "new_difficulty", "change"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		rec := []string{row.Word, f3(row.Mean), row.Old, row.New, row.Change()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %q: %w", row.Word, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func f3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func indexOf(fields []string, name string) int {
	for i, f := range fields {
		if strings.TrimSpace(f) == name {
			return i
		}
	}
	return -1
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func numericCell(rec []string, i int) (float64, bool) {
	s := strings.TrimSpace(cell(rec, i))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
