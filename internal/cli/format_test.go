package cli

import "testing"

func TestFormatMoney_IndianGrouping(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{125000, "₹1,25,000"},
		{1234567, "₹12,34,567"},
		{-125000, "-₹1,25,000"},
		{2499.6, "₹2,500"},
	}
	for _, tt := range tests {
		if got := FormatMoney("₹", tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney("₹", 500); got != "+₹500" {
		t.Errorf("positive = %q, want +₹500", got)
	}
	if got := FormatSignedMoney("₹", -500); got != "-₹500" {
		t.Errorf("negative = %q, want -₹500", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(12.5); got != "+12.5%" {
		t.Errorf("FormatDelta(12.5) = %q, want +12.5%%", got)
	}
	if got := FormatDelta(-8.1); got != "-8.1%" {
		t.Errorf("FormatDelta(-8.1) = %q, want -8.1%%", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q, want unchanged", got)
	}
	if got := Truncate("a very long transaction title", 10); got != "a very lo…" {
		t.Errorf("Truncate = %q, want 10 runes ending in ellipsis", got)
	}
}

func TestBudgetBarColor_Thresholds(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{1.2, string(ColorRed)},
		{1.0, string(ColorRed)},
		{0.8, string(ColorOrange)},
		{0.5, string(ColorYellow)},
		{0.1, string(ColorBlue)},
	}
	for _, tt := range tests {
		if got := string(BudgetBarColor(tt.pct)); got != tt.want {
			t.Errorf("BudgetBarColor(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}
