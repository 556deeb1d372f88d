package simlog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	dump := `{"aah", {5, 4,
	6}}, {"aal", {3}},
	{"aalii", {}}
	{"zygote", {2, x, 7trailing, , -1}}`

	got := Parse([]byte(dump))
	want := []Entry{
		{Word: "aah", Wrong: []int{5, 4, 6}},
		{Word: "aal", Wrong: []int{3}},
		{Word: "aalii", Wrong: nil},
		{Word: "zygote", Wrong: []int{2, 7, -1}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIgnoresNoise(t *testing.T) {
	if got := Parse([]byte("no records here {just braces}")); got != nil {
		t.Fatalf("Parse of noise = %v, want nil", got)
	}
}

func TestEntryMean(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  float64
	}{
		{"averages counts", Entry{Word: "aah", Wrong: []int{5, 4, 6}}, 5},
		{"single game", Entry{Word: "aal", Wrong: []int{3}}, 3},
		{"no games", Entry{Word: "aalii"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Mean(); got != tt.want {
				t.Fatalf("Mean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	entries := []Entry{
		{Word: "aah", Wrong: []int{5, 4, 6}},
		{Word: "aalii", Wrong: nil},
	}
	var sb strings.Builder
	if err := Write(&sb, entries); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := strings.Join([]string{
		"word\twrong_guesses\tmean_wrong_guesses",
		"aah\t[5, 4, 6]\t5.000",
		"aalii\t[]\t0.000",
		"",
	}, "\n")
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Fatalf("simulation TSV mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteReadMeansRoundTrip(t *testing.T) {
	entries := Parse([]byte(`{"cat", {1, 2}}, {"dog", {4}}`))
	var sb strings.Builder
	if err := Write(&sb, entries); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ReadMeans(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("ReadMeans: %v", err)
	}
	want := map[string]float64{"cat": 1.5, "dog": 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("means mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMeansSkipsBadRows(t *testing.T) {
	in := strings.Join([]string{
		"word\twrong_guesses\tmean_wrong_guesses",
		"CAT\t[1]\t1.500",
		"dog\t[]\tNaN",
		"owl\t[2]\tnot-a-number",
		"\t[3]\t3.000",
		"cat\t[9]\t9.000",
	}, "\n")
	got, err := ReadMeans(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadMeans: %v", err)
	}
	want := map[string]float64{"cat": 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("means mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMeansRejectsBadInput(t *testing.T) {
	if _, err := ReadMeans(strings.NewReader("")); err == nil {
		t.Fatalf("empty input did not fail")
	}
	if _, err := ReadMeans(strings.NewReader("word\twrong_guesses\ncat\t[1]\n")); err == nil {
		t.Fatalf("missing mean column did not fail")
	}
}
