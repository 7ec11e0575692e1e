package components

import "testing"

func TestLayoutRow_SumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 4},
		{103, 4},
		{7, 3},
		{80, 1},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestLayoutRow_ZeroItems(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('d'); got != 0 {
		t.Errorf("TabIdxByKey(d) = %d, want 0", got)
	}
	if got := TabIdxByKey('x'); got != 4 {
		t.Errorf("TabIdxByKey(x) = %d, want 4", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey(z) = %d, want -1", got)
	}
}

func TestColorForSpend_Thresholds(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{1.5, ColorForSpend(1.0)},
		{0.7, ColorForSpend(0.67)},
		{0.4, ColorForSpend(0.34)},
	}
	for _, tt := range tests {
		if got := ColorForSpend(tt.pct); got != tt.want {
			t.Errorf("ColorForSpend(%v) = %q, want same band as %q", tt.pct, got, tt.want)
		}
	}
	if ColorForSpend(0.1) == ColorForSpend(0.5) {
		t.Error("low and mid spend bands should differ")
	}
}
