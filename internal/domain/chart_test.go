package domain

import "testing"

func TestParseChartType(t *testing.T) {
	tests := []struct {
		label string
		want  ChartType
	}{
		{label: "S20", want: ChartTypeSingle},
		{label: "D24", want: ChartTypeDouble},
		{label: "C2x4", want: ChartTypeCoop},
		{label: "s7", want: ChartTypeSingle},
		{label: "", want: ChartTypeUnknown},
		{label: "20", want: ChartTypeUnknown},
	}
	for _, tt := range tests {
		if got := ParseChartType(tt.label); got != tt.want {
			t.Errorf("ParseChartType(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestHitCountsKnown(t *testing.T) {
	n := func(v int) *int { return &v }
	h := HitCounts{Perfects: n(400), Greats: n(50), Misses: n(10)}
	known, sum := h.Known()
	if known != 3 || sum != 460 {
		t.Fatalf("Known() = %d, %d, want 3, 460", known, sum)
	}
}
