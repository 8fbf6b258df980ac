package render

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "¥0"},
		{960, "¥960"},
		{4000, "¥4,000"},
		{4000.4, "¥4,000"},
		{4000.5, "¥4,001"},
		{1234567, "¥1,234,567"},
		{-1250, "-¥1,250"},
		{math.NaN(), "¥-"},
		{math.Inf(1), "¥-"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.input); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCurrencySymbolFromTables(t *testing.T) {
	if cnySymbol != "¥" {
		t.Fatalf("cnySymbol = %q, want %q", cnySymbol, "¥")
	}
	if got := FormatCurrency(5012); got != cnySymbol+"5,012" {
		t.Errorf("FormatCurrency(5012) = %q, want %q", got, cnySymbol+"5,012")
	}
}
