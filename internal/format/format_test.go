package format_test

import (
	"strings"
	"testing"
	"time"

	"gallows/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Word", "Guesses", "Wrong")
	tb.Row("jazz", 14, 10)
	tb.Row("queue", 9, 4)
	out := tb.String()

	if !strings.Contains(out, "Word") {
		t.Errorf("expected header 'Word' in output:\n%s", out)
	}
	if !strings.Contains(out, "jazz") {
		t.Errorf("expected 'jazz' in output:\n%s", out)
	}
	if !strings.Contains(out, "14") {
		t.Errorf("expected '14' in output:\n%s", out)
	}
	// ASCII uses box-drawing characters from StyleLight
	if strings.Contains(out, "───") == false {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Model", "Games", "Cost")
	tb.Row("gpt-4o", 200, "$0.075")
	tb.Row("sonnet", 200, "$0.120")
	out := tb.String()

	// Markdown tables have | delimiters and --- separator
	if !strings.Contains(out, "| Model") {
		t.Errorf("expected markdown header with '| Model':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
	if !strings.Contains(out, "gpt-4o") {
		t.Errorf("expected 'gpt-4o' in output:\n%s", out)
	}
}

func TestMarkdown_WithFooter(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Model", "Total")
	tb.Row("gpt-4o", 100)
	tb.Row("sonnet", 200)
	tb.Footer("TOTAL", 300)
	out := tb.String()

	if !strings.Contains(out, "TOTAL") {
		t.Errorf("expected footer 'TOTAL' in output:\n%s", out)
	}
	if !strings.Contains(out, "300") {
		t.Errorf("expected footer value '300' in output:\n%s", out)
	}
}

func TestColumns_RightAlign(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Word", "Wrong")
	tb.Row("rhythm", 12345)
	tb.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	out := tb.String()

	if !strings.Contains(out, "12345") {
		t.Errorf("expected '12345' in output:\n%s", out)
	}
}

func TestSameData_DualFormat(t *testing.T) {
	build := func(m format.Mode) string {
		tb := format.NewTable(m)
		tb.Header("A", "B")
		tb.Row("x", "y")
		return tb.String()
	}

	ascii := build(format.ASCII)
	md := build(format.Markdown)

	if ascii == md {
		t.Error("ASCII and Markdown output should differ")
	}
	for _, out := range []string{ascii, md} {
		if !strings.Contains(out, "x") || !strings.Contains(out, "y") {
			t.Errorf("expected data in output:\n%s", out)
		}
	}
}

// --- Helper tests ---

func TestFmtFloat3(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{2.8, "2.800"},
		{4.6, "4.600"},
		{1.0 / 3.0, "0.333"},
		{-0.5, "-0.500"},
	}
	for _, tc := range tests {
		got := format.FmtFloat3(tc.in)
		if got != tc.want {
			t.Errorf("FmtFloat3(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFmtMoney(t *testing.T) {
	tests := []struct {
		v        float64
		currency string
		want     string
	}{
		{1.2345, "USD", "$1.23"},
		{1.2345, "", "$1.23"},
		{10, "EUR", "10.00 EUR"},
	}
	for _, tc := range tests {
		got := format.FmtMoney(tc.v, tc.currency)
		if got != tc.want {
			t.Errorf("FmtMoney(%v, %q) = %q, want %q", tc.v, tc.currency, got, tc.want)
		}
	}
}

func TestFmtTokens(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{500, "500"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{20000, "20.0K"},
		{1000000, "1.0M"},
		{2500000, "2.5M"},
	}
	for _, tc := range tests {
		got := format.FmtTokens(tc.in)
		if got != tc.want {
			t.Errorf("FmtTokens(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFmtDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m 0s"},
		{90 * time.Second, "1m 30s"},
		{5*time.Minute + 15*time.Second, "5m 15s"},
	}
	for _, tc := range tests {
		got := format.FmtDuration(tc.in)
		if got != tc.want {
			t.Errorf("FmtDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"ab", 3, "ab"},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range tests {
		got := format.Truncate(tc.in, tc.maxLen)
		if got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}
