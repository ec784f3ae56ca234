package calibrate

import (
	"math"

	"github.com/pumptrack/statserver/internal/domain"
)

const (
	// MinPoints is how many accuracy observations a player needs before
	// their curve participates in calibration.
	MinPoints = 50

	minLevel   = 1.0
	maxLevel   = 28.0
	sampleStep = 0.05
)

// fitCurve fits a player's accuracy-vs-level observations with a
// logarithmic regression and returns predictions sampled over levels
// 1 to 28 at 0.05 resolution, clamped to [0, 100].
//
// The points are mirrored through (30-level, 101-accuracy) first so the
// fit models decay away from the player's peak instead of following the
// raw level axis. Degenerate input (all points on one level) yields no
// curve, same as too few samples.
func fitCurve(points []domain.AccuracyPoint) []float64 {
	if len(points) < MinPoints {
		return nil
	}
	var sx, sy, sxx, sxy float64
	n := float64(len(points))
	for _, pt := range points {
		x := math.Log(30 - float64(pt.Level))
		y := 101 - pt.Accuracy
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	den := n*sxx - sx*sx
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return nil
	}
	b := (n*sxy - sx*sy) / den
	a := (sy - b*sx) / n
	if math.IsNaN(a) || math.IsNaN(b) {
		return nil
	}

	count := int(math.Round((maxLevel-minLevel)/sampleStep)) + 1
	samples := make([]float64, count)
	for i := 0; i < count; i++ {
		level := minLevel + sampleStep*float64(i)
		pred := 101 - (a + b*math.Log(30-level))
		if pred < 0 {
			pred = 0
		}
		if pred > 100 {
			pred = 100
		}
		samples[i] = pred
	}
	return samples
}

// interpolate returns the lowest sampled level whose predicted accuracy
// falls under the given raw accuracy.
func interpolate(samples []float64, accuracy float64) (float64, bool) {
	for i, pred := range samples {
		if pred < accuracy {
			return minLevel + sampleStep*float64(i), true
		}
	}
	return 0, false
}
