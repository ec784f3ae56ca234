package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

const (
	// Baseline seeds a profile's rating before its first battle. Nominal
	// constant kept from calibration runs; the progress-bonus seed is
	// computed separately and intentionally not folded in here.
	Baseline = 1000.0

	// Floor is the hard lower bound on any rating.
	Floor = 100.0
)

// Expected score of a player rated ra against an opponent rated rb.
// Standard Elo curve, base 10, divisor 400.
func Expected(ra, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
}

// KFactor computes the per-battle coefficient for one player: an
// exponential curve in the chart's calibrated difficulty, capped by a
// bound that grows with the player's current rating.
func KFactor(rating, level float64) float64 {
	bound := 20 + 20*clamp01((rating-700)/800)
	curve := 2.5 * math.Pow(2, level/4)
	return math.Min(bound, curve)
}

// ApplyDelta returns the rating after applying a delta, never dropping
// below Floor.
func ApplyDelta(rating, delta float64) float64 {
	return math.Max(Floor, rating+delta)
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
