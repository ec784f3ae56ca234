package pipeline

import (
	"math"
	"testing"
)

func TestAggregateExperience(t *testing.T) {
	tests := []struct {
		name    string
		chartID int64
		grade   string
		want    float64
	}{
		{
			name:    "standard chart",
			chartID: 1,
			grade:   "a",
			want:    math.Pow(20, 2.31) * 0.8 / 9,
		},
		{
			name:    "co-op chart scales linearly",
			chartID: 3,
			grade:   "s",
			want:    8 * 1000 * 1.0 / 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{
				Results: []RawResult{result(1, 1, tt.chartID, 700000, tt.grade)},
				Players: testPlayers(),
				Catalog: testCatalog(),
			}
			n := normalize(in)
			a := aggregate(n, in)
			p, ok := a.byPlayer[1]
			if !ok {
				t.Fatal("no profile aggregated")
			}
			if math.Abs(p.Exp-tt.want) > 1e-9 {
				t.Errorf("exp = %v, want %v", p.Exp, tt.want)
			}
		})
	}
}

func TestAggregateSkipsRepeatGradeExperience(t *testing.T) {
	in := Input{
		Results: []RawResult{
			result(1, 1, 1, 700000, "s"),
			result(2, 1, 1, 750000, "s"), // same grade again, no new credit
		},
		Players: testPlayers(),
		Catalog: testCatalog(),
	}
	n := normalize(in)
	a := aggregate(n, in)
	want := math.Pow(20, 2.31) * 1.0 / 9
	if got := a.byPlayer[1].Exp; math.Abs(got-want) > 1e-9 {
		t.Errorf("exp = %v, want a single grant %v", got, want)
	}
}
