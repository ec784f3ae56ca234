// Package calibrate re-estimates each chart's effective difficulty from
// player accuracy curves, independent of the nominal authored level.
package calibrate

import "github.com/pumptrack/statserver/internal/domain"

// Charts recalibrates InterpolatedDifficulty for every chart. Each
// contributing player is one with an active non-rank-mode accuracy
// result on the chart and a fitted curve; the chart's nominal level is
// injected as two extra full-weight observations to anchor the mean.
// Curves are fitted once per player and cached on the profile.
func Charts(charts []*domain.Chart, profiles map[int64]*domain.Profile) {
	fitted := make(map[int64]bool)
	curve := func(p *domain.Profile) []float64 {
		if !fitted[p.ID] {
			fitted[p.ID] = true
			p.AccuracyPointsInterpolated = fitCurve(p.AccuracyPoints)
		}
		return p.AccuracyPointsInterpolated
	}

	for _, chart := range charts {
		nominal := float64(chart.Level)
		sum := 2 * nominal
		weight := 2.0
		for _, res := range chart.Results {
			if res.RankMode || res.Accuracy == nil {
				continue
			}
			p, ok := profiles[res.PlayerID]
			if !ok {
				continue
			}
			samples := curve(p)
			if samples == nil {
				continue
			}
			interp, ok := interpolate(samples, *res.Accuracy)
			if !ok {
				continue
			}
			w := extremityWeight(*res.Accuracy) * distanceDamping(interp, nominal)
			if w <= 0 {
				continue
			}
			sum += w * interp
			weight += w
		}
		chart.InterpolatedDifficulty = sum / weight
	}
}

// extremityWeight gives full weight to ordinary accuracies and tapers
// off at both extremes, where a play says little about difficulty.
func extremityWeight(accuracy float64) float64 {
	switch {
	case accuracy < 80:
		return clamp01(1 - (80-accuracy)/20)
	case accuracy > 98:
		return clamp01((100 - accuracy) / 2)
	}
	return 1
}

// distanceDamping discounts contributions that land far from the
// nominal level.
func distanceDamping(interpolated, nominal float64) float64 {
	d := interpolated - nominal
	if d < 0 {
		d = -d
	}
	w := (8 - d) / 8
	if w < 0.1 {
		return 0.1
	}
	return w
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
