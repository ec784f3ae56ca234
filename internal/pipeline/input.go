package pipeline

import (
	"time"

	"github.com/pumptrack/statserver/internal/domain"
)

// RawResult is one score submission as it arrives from the collector,
// untyped and possibly incomplete.
type RawResult struct {
	ID       int64
	PlayerID int64
	ChartID  int64

	Score         int64
	Grade         string
	Gained        time.Time
	ExactGainDate bool
	RankMode      bool
	ModsList      string

	Perfects *int
	Greats   *int
	Goods    *int
	Bads     *int
	Misses   *int
	Combo    *int
	Calories *float64

	// IsIntermediate marks a minimal record carried only for battle
	// replay.
	IsIntermediate bool
}

// CatalogChart is one entry of the track catalog supplied alongside the
// raw dump.
type CatalogChart struct {
	ID            int64
	TrackName     string
	Label         string
	Level         int
	Duration      time.Duration
	MaxTotalSteps int
}

// Input is everything one pipeline run consumes. The pipeline never
// mutates it.
type Input struct {
	Results []RawResult
	Players map[int64]domain.Player
	Catalog map[int64]CatalogChart

	// SinglesLevels and DoublesLevels count how many catalog charts
	// exist per level, used by the progress engine.
	SinglesLevels map[int]int
	DoublesLevels map[int]int
}
