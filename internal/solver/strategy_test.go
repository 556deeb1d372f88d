package solver

import "testing"

func request(board Board, wrong string, candidates ...string) Request {
	return Request{
		Board:      board,
		Wrong:      WordLetters(wrong),
		Candidates: candidates,
		Alphabet:   DefaultRules().Alphabet,
	}
}

func TestFreqRawChoose(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want byte
		ok   bool
	}{
		{
			name: "duplicates count every time",
			req:  request("....", "", "aaab", "cccb"),
			want: 'a', // a and c both score 3, earlier letter wins
			ok:   true,
		},
		{
			name: "tie breaks to earlier letter",
			req:  request("...", "", "cat", "cot", "cut"),
			want: 'c', // c and t both score 3
			ok:   true,
		},
		{
			name: "revealed letters excluded",
			req:  request("c..", "", "cat", "cot", "cut"),
			want: 't',
			ok:   true,
		},
		{
			name: "wrong letters excluded",
			req:  request("...", "ct", "cat", "cot", "cut"),
			want: 'a', // a, o, u all score 1
			ok:   true,
		},
		{
			name: "no candidates means no signal",
			req:  request("...", ""),
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FreqRaw{}.Choose(tt.req)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Fatalf("Choose = %q, %v, want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCoverageCountsWordsNotOccurrences(t *testing.T) {
	// b appears in both words; a and c pile up repeats in one word each.
	req := request("....", "", "aaab", "cccb")
	got, ok := Coverage{}.Choose(req)
	if !ok || got != 'b' {
		t.Fatalf("Coverage.Choose = %q, %v, want 'b', true", got, ok)
	}

	if got, ok := (FreqRaw{}).Choose(req); !ok || got != 'a' {
		t.Fatalf("FreqRaw.Choose = %q, %v, want 'a', true", got, ok)
	}
}

func TestInfoGainPrefersDiscriminators(t *testing.T) {
	// c and t appear in every candidate and split nothing (score 9);
	// a, o, u each isolate one word (score 1 + 4 = 5).
	req := request("...", "", "cat", "cot", "cut")
	got, ok := InfoGain{}.Choose(req)
	if !ok || got != 'a' {
		t.Fatalf("InfoGain.Choose = %q, %v, want 'a', true", got, ok)
	}
}

func TestInfoGainNoSignal(t *testing.T) {
	t.Run("single candidate scores flat", func(t *testing.T) {
		if got, ok := (InfoGain{}).Choose(request("...", "", "cat")); ok {
			t.Fatalf("Choose = %q, true, want no signal", got)
		}
	})
	t.Run("no candidates scores flat", func(t *testing.T) {
		if got, ok := (InfoGain{}).Choose(request("...", "")); ok {
			t.Fatalf("Choose = %q, true, want no signal", got)
		}
	})
	t.Run("alphabet exhausted", func(t *testing.T) {
		req := request("...", "", "cat", "cot")
		req.Alphabet = ""
		if got, ok := (InfoGain{}).Choose(req); ok {
			t.Fatalf("Choose = %q, true, want no signal", got)
		}
	})
}

func TestRequestGuessed(t *testing.T) {
	req := request("c.t", "ab", "cot")
	guessed := req.Guessed()
	for _, c := range []byte{'c', 't', 'a', 'b'} {
		if !guessed.Has(c) {
			t.Fatalf("Guessed() missing %q", c)
		}
	}
	if guessed.Len() != 4 {
		t.Fatalf("Guessed().Len() = %d, want 4", guessed.Len())
	}
}

func TestForCode(t *testing.T) {
	for _, want := range []string{"freq_raw", "coverage", "info_gain"} {
		s, err := ForCode(want)
		if err != nil {
			t.Fatalf("ForCode(%q): %v", want, err)
		}
		if s.Code() != want {
			t.Fatalf("ForCode(%q).Code() = %q", want, s.Code())
		}
	}
	if _, err := ForCode("entropy"); err == nil {
		t.Fatalf("ForCode(entropy) did not fail")
	}
}

func TestAllOrder(t *testing.T) {
	want := []string{"freq_raw", "coverage", "info_gain"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d strategies, want %d", len(all), len(want))
	}
	for i, s := range all {
		if s.Code() != want[i] {
			t.Fatalf("All()[%d].Code() = %q, want %q", i, s.Code(), want[i])
		}
	}
}
