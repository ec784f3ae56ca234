package domain

import "time"

// HitCounts holds the per-judgement step counts of one play. Dumps from
// older mixes miss some categories, so every field is optional.
type HitCounts struct {
	Perfects *int
	Greats   *int
	Goods    *int
	Bads     *int
	Misses   *int
}

// Known returns how many categories are present and the sum of those.
func (h HitCounts) Known() (n int, sum int) {
	for _, c := range []*int{h.Perfects, h.Greats, h.Goods, h.Bads, h.Misses} {
		if c != nil {
			n++
			sum += *c
		}
	}
	return n, sum
}

// Result is one player's recorded attempt on one chart.
type Result struct {
	ID       int64
	PlayerID int64
	ChartID  int64

	Score    int64
	Grade    Grade
	Gained   time.Time
	RankMode bool

	Hits     HitCounts
	Combo    *int
	Calories *float64
	Mods     string

	// Accuracy is derived from Hits when all categories are known,
	// percent in (0, 100].
	Accuracy *float64

	// BestGradeOnChart marks the single result that carries the player's
	// best grade on this chart.
	BestGradeOnChart bool

	// IsExactDate is false when Gained was reconstructed from a scrape
	// interval rather than reported by the game.
	IsExactDate bool

	// IsIntermediate marks a minimal record kept only for battle replay,
	// never aggregated into profiles or shown on leaderboards.
	IsIntermediate bool
}

// ResultStats is the per-result side table filled by the rating and
// skill-points stages, keyed by result id in the snapshot.
type ResultStats struct {
	StartingRating float64
	RatingDiff     float64
	RatingDiffLast float64
	SkillPoints    float64
}
