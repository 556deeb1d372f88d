// Package quantile turns a continuous metric distribution into ordered
// discrete tiers: interior percentile thresholds over the values, then
// bisect-left classification against those thresholds.
package quantile

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Thresholds computes the bins-1 interior cut points of values: for
// k = 1..bins-1, the (100k/bins)-th percentile by linear interpolation
// between order statistics. The result is clamped non-decreasing so
// duplicate-heavy distributions cannot produce inverted cuts.
func Thresholds(values []float64, bins int) ([]float64, error) {
	if bins < 2 {
		return nil, fmt.Errorf("bins must be >= 2, got %d", bins)
	}
	if len(values) == 0 {
		return nil, errors.New("no values to compute thresholds over")
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	step := 100.0 / float64(bins)
	cuts := make([]float64, 0, bins-1)
	for k := 1; k < bins; k++ {
		cuts = append(cuts, percentile(sorted, step*float64(k)))
	}
	for i := 1; i < len(cuts); i++ {
		if cuts[i] < cuts[i-1] {
			cuts[i] = cuts[i-1]
		}
	}
	return cuts, nil
}

// percentile interpolates the pct-th percentile of ascending values at
// fractional rank pct/100 * (len-1).
func percentile(sorted []float64, pct float64) float64 {
	if pct <= 0 {
		return sorted[0]
	}
	if pct >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := pct / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Classify returns the bin index for value: the leftmost cut point
// that is >= value, so a value equal to a cut lands in the lower bin.
// Values above every cut land in len(cuts), the last bin.
func Classify(value float64, cuts []float64) int {
	return sort.SearchFloat64s(cuts, value)
}

// Binner pairs interior cut points with the ordered labels they
// separate. A label is only ever produced from defined thresholds.
type Binner struct {
	cuts   []float64
	labels []string
}

// NewBinner validates that labels fit cuts: exactly one more label
// than cut points, cut points non-decreasing.
func NewBinner(cuts []float64, labels []string) (*Binner, error) {
	if len(labels) != len(cuts)+1 {
		return nil, fmt.Errorf("got %d labels for %d cut points, want %d", len(labels), len(cuts), len(cuts)+1)
	}
	for i := 1; i < len(cuts); i++ {
		if cuts[i] < cuts[i-1] {
			return nil, fmt.Errorf("cut points must be non-decreasing, got %v", cuts)
		}
	}
	return &Binner{cuts: cuts, labels: labels}, nil
}

// Label classifies value into one of the binner's labels.
func (b *Binner) Label(value float64) string {
	return b.labels[Classify(value, b.cuts)]
}

// Cuts returns the interior cut points.
func (b *Binner) Cuts() []float64 { return b.cuts }

// Labels returns the ordered labels.
func (b *Binner) Labels() []string { return b.labels }

// ParseCuts parses a comma-separated list of explicit cut points,
// returned in ascending order. Empty fragments are ignored.
func ParseCuts(s string) ([]float64, error) {
	var cuts []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("cut point %q is not a number", part)
		}
		cuts = append(cuts, v)
	}
	if len(cuts) == 0 {
		return nil, errors.New("no cut points given")
	}
	sort.Float64s(cuts)
	return cuts, nil
}
