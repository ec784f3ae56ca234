// Package skill computes the non-comparative per-result skill value and
// its weighted profile total.
package skill

import (
	"math"
	"sort"

	"github.com/pumptrack/statserver/internal/domain"
)

// decay weights a profile's ranked skill values: the n-th best result
// contributes decay^n of its value.
const decay = 0.95

// MaxSkill is the ceiling a chart can award, driven by calibrated
// difficulty.
func MaxSkill(level float64) float64 {
	return math.Pow(level, 2.2) / 7.6
}

// Value maps a raw score against the chart's theoretical ceiling onto
// the chart's skill range. Scores below 30% of the ceiling award zero.
func Value(score int64, maxScore, level float64) float64 {
	k := (float64(score)/maxScore - 0.3) / 0.7
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return k * MaxSkill(level)
}

// Apply computes skill points for every active non-rank-mode result on
// charts with a known score ceiling, then folds each profile's ranked
// values into its total. The total becomes the profile's canonical
// rating, replacing the pairwise one the battle replay wrote there.
// Intermediate records exist for the battle replay only and earn no
// skill.
func Apply(charts []*domain.Chart, byPlayer map[int64]*domain.Profile, profiles []*domain.Profile, stats func(resultID int64) *domain.ResultStats) {
	for _, chart := range charts {
		if chart.MaxScore <= 0 {
			continue
		}
		for _, res := range chart.Results {
			if res.RankMode || res.IsIntermediate {
				continue
			}
			p, ok := byPlayer[res.PlayerID]
			if !ok {
				continue
			}
			v := Value(res.Score, chart.MaxScore, chart.InterpolatedDifficulty)
			stats(res.ID).SkillPoints = v
			p.SkillPoints = append(p.SkillPoints, v)
		}
	}
	for _, p := range profiles {
		sort.Sort(sort.Reverse(sort.Float64Slice(p.SkillPoints)))
		total := 0.0
		weight := 1.0
		for _, v := range p.SkillPoints {
			total += v * weight
			weight *= decay
		}
		p.SkillTotal = total
		p.Rating = total
	}
}
