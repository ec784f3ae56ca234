package domain

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Player is an entry of the player directory supplied with the raw dump.
type Player struct {
	ID         int64
	Nickname   string
	ArcadeName string
	Region     string

	// Placeholder marks shared house accounts whose results only matter
	// when they top a leaderboard.
	Placeholder bool
}

// RatingEvent is one point of a profile's rating history.
type RatingEvent struct {
	Rating float64
	Date   time.Time
}

// PlaceEvent is one point of a profile's leaderboard placement history.
type PlaceEvent struct {
	Place int
	Date  time.Time
}

// AccuracyPoint is one (chart level, accuracy) observation used by the
// difficulty calibrator.
type AccuracyPoint struct {
	Level    int
	Accuracy float64
}

// GradeMark records the chart a player's best-grade result landed on,
// consumed by the progress engine.
type GradeMark struct {
	ChartID int64
	Type    ChartType
	Level   int
	Grade   Grade
}

// AchievementState is the per-achievement ratchet stored on a profile.
// Progress is in [0, 100] and never decreases. The remaining fields are
// internal tracking the transition functions are free to use.
type AchievementState struct {
	Progress float64
	Count    int
	Best     float64
	Charts   mapset.Set[int64]
}

// LevelProgress is one level's completion line in the progress table.
type LevelProgress struct {
	Achieved    int
	Required    int
	Coefficient float64
	RawBonus    float64
}

// GradeProgress is the per-grade-tier slice of the progress table.
type GradeProgress struct {
	Levels    map[int]LevelProgress
	BestLevel int
	Bonus     float64
}

// Progress is the per-profile completion/bonus table.
type Progress struct {
	ByType map[ChartType]map[Grade]*GradeProgress

	// Bonus is the summed representative bonus, exposed as the seed value
	// of the starting-rating calculation.
	Bonus float64
}

// Profile is one player's aggregate state derived from the full history.
type Profile struct {
	ID   int64
	Name string

	// Rating orders the global leaderboard. The battle replay writes the
	// pairwise rating here first, the skill-points stage overwrites it
	// with the weighted skill total last.
	Rating float64

	// EloRating keeps the pairwise replay rating after Rating has been
	// overwritten.
	EloRating float64

	RatingHistory    []RatingEvent
	PlacementHistory []PlaceEvent

	Exp       float64
	PlayCount int

	Grades        map[Grade]int
	AccuracySum   float64
	AccuracyCount int

	Achievements map[string]AchievementState

	BestGrades     []GradeMark
	AccuracyPoints []AccuracyPoint

	// AccuracyPointsInterpolated caches the sampled inversion of the
	// player's fitted accuracy curve; nil until the calibrator fits it,
	// and stays nil for players with too few observations.
	AccuracyPointsInterpolated []float64

	SkillPoints []float64
	SkillTotal  float64

	Progress *Progress
}

// Accuracy is the running mean accuracy, zero when nothing contributed.
func (p *Profile) Accuracy() float64 {
	if p.AccuracyCount == 0 {
		return 0
	}
	return p.AccuracySum / float64(p.AccuracyCount)
}
