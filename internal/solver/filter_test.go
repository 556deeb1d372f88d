package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		board      Board
		wrong      string
		candidates []string
		want       []string
	}{
		{
			name:       "wrong letter and pattern mismatch pruned",
			board:      "c.t",
			wrong:      "a",
			candidates: []string{"cat", "cot", "cut", "bat"},
			want:       []string{"cot", "cut"},
		},
		{
			name:       "revealed letter cannot hide in a blank slot",
			board:      "c.t",
			wrong:      "",
			candidates: []string{"cct", "cot"},
			want:       []string{"cot"},
		},
		{
			name:       "length mismatch pruned",
			board:      "c.t",
			wrong:      "",
			candidates: []string{"cart", "co", "cot"},
			want:       []string{"cot"},
		},
		{
			name:       "blank board keeps everything but wrong letters",
			board:      "...",
			wrong:      "o",
			candidates: []string{"cat", "cot", "dug"},
			want:       []string{"cat", "dug"},
		},
		{
			name:       "nothing survives",
			board:      "z..",
			wrong:      "",
			candidates: []string{"cat", "cot"},
			want:       nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.candidates, tt.board, WordLetters(tt.wrong))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterLeavesInputUntouched(t *testing.T) {
	candidates := []string{"cat", "cot", "cut", "bat"}
	Filter(candidates, "c.t", WordLetters("a"))
	want := []string{"cat", "cot", "cut", "bat"}
	if diff := cmp.Diff(want, candidates); diff != "" {
		t.Fatalf("input slice changed (-want +got):\n%s", diff)
	}
}
