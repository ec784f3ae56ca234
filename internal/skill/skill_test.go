package skill

import (
	"math"
	"testing"

	"github.com/pumptrack/statserver/internal/domain"
)

func TestValue(t *testing.T) {
	max := MaxSkill(20)
	tests := []struct {
		name  string
		score int64
		want  float64
	}{
		{name: "at ceiling", score: 1000000, want: max},
		{name: "above ceiling clamps", score: 1100000, want: max},
		{name: "at 30 percent", score: 300000, want: 0},
		{name: "below 30 percent", score: 100000, want: 0},
		{name: "midpoint", score: 650000, want: 0.5 * max},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Value(tt.score, 1000000, 20)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Value(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestMaxSkillGrowsWithLevel(t *testing.T) {
	prev := 0.0
	for level := 1.0; level <= 28; level++ {
		v := MaxSkill(level)
		if v <= prev {
			t.Fatalf("MaxSkill(%v) = %v, not above %v", level, v, prev)
		}
		prev = v
	}
}

func TestApply(t *testing.T) {
	chart := &domain.Chart{
		ID:                     1,
		Level:                  20,
		InterpolatedDifficulty: 20,
		MaxScore:               1000000,
		Results: []*domain.Result{
			{ID: 1, PlayerID: 1, Score: 1000000},
			{ID: 2, PlayerID: 1, Score: 650000, RankMode: true},
		},
	}
	second := &domain.Chart{
		ID:                     2,
		Level:                  10,
		InterpolatedDifficulty: 10,
		MaxScore:               1000000,
		Results: []*domain.Result{
			{ID: 3, PlayerID: 1, Score: 650000},
		},
	}
	p := &domain.Profile{ID: 1, EloRating: 1234}
	p.Rating = p.EloRating
	byPlayer := map[int64]*domain.Profile{1: p}

	stats := map[int64]*domain.ResultStats{}
	statsFor := func(id int64) *domain.ResultStats {
		st, ok := stats[id]
		if !ok {
			st = &domain.ResultStats{}
			stats[id] = st
		}
		return st
	}

	Apply([]*domain.Chart{chart, second}, byPlayer, []*domain.Profile{p}, statsFor)

	big := MaxSkill(20)
	small := 0.5 * MaxSkill(10)
	if st := stats[1]; st == nil || math.Abs(st.SkillPoints-big) > 1e-9 {
		t.Fatalf("result 1 skill = %+v, want %v", stats[1], big)
	}
	if _, ok := stats[2]; ok {
		t.Fatal("rank-mode result must not earn skill points")
	}
	want := big + decay*small
	if math.Abs(p.SkillTotal-want) > 1e-9 {
		t.Errorf("total = %v, want %v", p.SkillTotal, want)
	}
	if p.Rating != p.SkillTotal {
		t.Errorf("rating = %v, should be replaced by the skill total", p.Rating)
	}
	if p.EloRating != 1234 {
		t.Errorf("elo rating = %v, must survive the overwrite", p.EloRating)
	}
}

func TestApplySkipsIntermediateResults(t *testing.T) {
	chart := &domain.Chart{
		ID:                     1,
		Level:                  20,
		InterpolatedDifficulty: 20,
		MaxScore:               1000000,
		Results: []*domain.Result{
			{ID: 1, PlayerID: 1, Score: 900000, IsIntermediate: true},
			{ID: 2, PlayerID: 1, Score: 650000},
		},
	}
	p := &domain.Profile{ID: 1}
	stats := map[int64]*domain.ResultStats{}
	Apply([]*domain.Chart{chart}, map[int64]*domain.Profile{1: p}, []*domain.Profile{p},
		func(id int64) *domain.ResultStats {
			st, ok := stats[id]
			if !ok {
				st = &domain.ResultStats{}
				stats[id] = st
			}
			return st
		})
	if _, ok := stats[1]; ok {
		t.Fatal("intermediate result must not earn skill points")
	}
	if len(p.SkillPoints) != 1 {
		t.Fatalf("skill points = %d, want only the full result's", len(p.SkillPoints))
	}
}

func TestApplySkipsChartsWithoutCeiling(t *testing.T) {
	chart := &domain.Chart{
		ID:      1,
		Level:   20,
		Results: []*domain.Result{{ID: 1, PlayerID: 1, Score: 900000}},
	}
	p := &domain.Profile{ID: 1}
	Apply([]*domain.Chart{chart}, map[int64]*domain.Profile{1: p}, []*domain.Profile{p},
		func(int64) *domain.ResultStats { return &domain.ResultStats{} })
	if len(p.SkillPoints) != 0 {
		t.Fatal("chart without a score ceiling must award nothing")
	}
}
