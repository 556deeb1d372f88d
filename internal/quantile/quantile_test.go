package quantile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestThresholds(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		bins   int
		want   []float64
	}{
		{
			name:   "five bins over one to ten",
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			bins:   5,
			want:   []float64{2.8, 4.6, 6.4, 8.2},
		},
		{
			name:   "median only",
			values: []float64{3, 1, 2},
			bins:   2,
			want:   []float64{2},
		},
		{
			name:   "unsorted input",
			values: []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5},
			bins:   5,
			want:   []float64{2.8, 4.6, 6.4, 8.2},
		},
		{
			name:   "constant distribution collapses",
			values: []float64{4, 4, 4, 4},
			bins:   4,
			want:   []float64{4, 4, 4},
		},
		{
			name:   "single value",
			values: []float64{7},
			bins:   3,
			want:   []float64{7, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Thresholds(tt.values, tt.bins)
			if err != nil {
				t.Fatalf("Thresholds: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Fatalf("Thresholds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestThresholdsErrors(t *testing.T) {
	if _, err := Thresholds([]float64{1, 2}, 1); err == nil {
		t.Fatalf("bins=1 did not fail")
	}
	if _, err := Thresholds(nil, 5); err == nil {
		t.Fatalf("empty values did not fail")
	}
}

func TestThresholdsNonDecreasing(t *testing.T) {
	values := []float64{1, 1, 1, 1, 1, 1, 2, 2, 3, 50}
	cuts, err := Thresholds(values, 5)
	if err != nil {
		t.Fatalf("Thresholds: %v", err)
	}
	for i := 1; i < len(cuts); i++ {
		if cuts[i] < cuts[i-1] {
			t.Fatalf("cuts not monotone: %v", cuts)
		}
	}
}

func TestClassify(t *testing.T) {
	cuts := []float64{2.8, 4.6, 6.4, 8.2}
	tests := []struct {
		value float64
		want  int
	}{
		{1, 0},
		{2.8, 0}, // equality stays in the lower bin
		{2.9, 1},
		{4.6, 1},
		{5, 2},
		{8.2, 3},
		{9, 4},
		{100, 4},
	}
	for _, tt := range tests {
		if got := Classify(tt.value, cuts); got != tt.want {
			t.Fatalf("Classify(%v) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestClassifyMonotoneInValue(t *testing.T) {
	cuts := []float64{2.8, 4.6, 6.4, 8.2}
	prev := -1
	for v := 0.0; v <= 10; v += 0.1 {
		idx := Classify(v, cuts)
		if idx < prev {
			t.Fatalf("Classify(%v) = %d went below %d", v, idx, prev)
		}
		prev = idx
	}
}

func TestBinner(t *testing.T) {
	labels := []string{"v_easy", "easy", "medium", "hard", "v_hard"}
	cuts, err := Thresholds([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	if err != nil {
		t.Fatalf("Thresholds: %v", err)
	}
	b, err := NewBinner(cuts, labels)
	if err != nil {
		t.Fatalf("NewBinner: %v", err)
	}
	if got := b.Label(5); got != "medium" {
		t.Fatalf("Label(5) = %q, want medium", got)
	}

	// Values equal to a cut land on that cut's own label.
	for i, cut := range b.Cuts() {
		if got := b.Label(cut); got != labels[i] {
			t.Fatalf("Label(cut %v) = %q, want %q", cut, got, labels[i])
		}
	}
}

func TestBinnerErrors(t *testing.T) {
	if _, err := NewBinner([]float64{1, 2}, []string{"lo", "hi"}); err == nil {
		t.Fatalf("label count mismatch did not fail")
	}
	if _, err := NewBinner([]float64{2, 1}, []string{"lo", "mid", "hi"}); err == nil {
		t.Fatalf("decreasing cuts did not fail")
	}
}

func TestParseCuts(t *testing.T) {
	got, err := ParseCuts("3.5, 0.5,1.5 ,2.5,")
	if err != nil {
		t.Fatalf("ParseCuts: %v", err)
	}
	want := []float64{0.5, 1.5, 2.5, 3.5}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("ParseCuts mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseCuts("1.5,two"); err == nil {
		t.Fatalf("non-numeric cut did not fail")
	}
	if _, err := ParseCuts(" , "); err == nil {
		t.Fatalf("empty cut list did not fail")
	}
}
