package elo

import (
	"math"
	"time"

	"github.com/pumptrack/statserver/internal/domain"
)

// pairKey identifies one chart/opponent pair regardless of side order.
type pairKey struct {
	chartID int64
	lowID   int64
	highID  int64
}

// pairDelta remembers the last full delta applied for a pair so that a
// recomputed battle only applies the increment, not the whole new value.
type pairDelta struct {
	low  float64
	high float64
}

// Env supplies the replay with everything owned by the caller. All state
// is scoped to one pipeline invocation; the package keeps nothing global.
type Env struct {
	// Profile returns (lazily creating) the profile for a player.
	Profile func(playerID int64) *domain.Profile
	// Skip reports players whose battles must not move any rating,
	// placeholder accounts in practice.
	Skip func(playerID int64) bool
	// Stats returns (lazily creating) the per-result side-table row.
	Stats func(resultID int64) *domain.ResultStats
}

// Replay applies every battle in generation order. Battle order is part
// of the contract: K depends on current ratings, so a different order
// produces different numbers.
func Replay(battles []domain.Battle, env Env) {
	pairs := make(map[pairKey]pairDelta)
	var seeded []*domain.Profile
	seededIDs := make(map[int64]bool)

	seed := func(playerID int64, res *domain.Result) *domain.Profile {
		p := env.Profile(playerID)
		if !seededIDs[playerID] {
			seededIDs[playerID] = true
			p.EloRating = Baseline
			seeded = append(seeded, p)
		}
		st := env.Stats(res.ID)
		if st.StartingRating == 0 {
			st.StartingRating = p.EloRating
		}
		return p
	}

	for _, b := range battles {
		if env.Skip(b.P1.PlayerID) || env.Skip(b.P2.PlayerID) {
			continue
		}
		p1 := seed(b.P1.PlayerID, b.P1)
		p2 := seed(b.P2.PlayerID, b.P2)

		e1 := Expected(p1.EloRating, p2.EloRating)
		e2 := Expected(p2.EloRating, p1.EloRating)
		s1, s2 := actualScores(b)

		level := b.Chart.InterpolatedDifficulty
		k := math.Min(KFactor(p1.EloRating, level), KFactor(p2.EloRating, level))
		k *= perfectionDamping(b)

		d1 := k * (float64(s1) - e1)
		d2 := k * (float64(s2) - e2)
		if b.P1.Grade == domain.GradeSSS && d1 < 0 {
			d1 = 0
		}
		if b.P2.Grade == domain.GradeSSS && d2 < 0 {
			d2 = 0
		}

		key, p1Low := pairKeyFor(b)
		prev := pairs[key]
		var a1, a2 float64
		if p1Low {
			a1, a2 = d1-prev.low, d2-prev.high
			pairs[key] = pairDelta{low: d1, high: d2}
		} else {
			a1, a2 = d1-prev.high, d2-prev.low
			pairs[key] = pairDelta{low: d2, high: d1}
		}

		date := b.Date()
		apply(p1, a1, date, seeded)
		apply(p2, a2, date, seeded)

		record(env.Stats(b.P1.ID), a1)
		record(env.Stats(b.P2.ID), a2)
	}

	for _, p := range seeded {
		p.Rating = p.EloRating
	}
}

func pairKeyFor(b domain.Battle) (key pairKey, p1Low bool) {
	if b.P1.PlayerID <= b.P2.PlayerID {
		return pairKey{chartID: b.Chart.ID, lowID: b.P1.PlayerID, highID: b.P2.PlayerID}, true
	}
	return pairKey{chartID: b.Chart.ID, lowID: b.P2.PlayerID, highID: b.P1.PlayerID}, false
}

func apply(p *domain.Profile, delta float64, date time.Time, seeded []*domain.Profile) {
	old := p.EloRating
	p.EloRating = ApplyDelta(p.EloRating, delta)
	if p.EloRating != old {
		p.RatingHistory = append(p.RatingHistory, domain.RatingEvent{Rating: p.EloRating, Date: date})
	}
	place := 1
	for _, other := range seeded {
		if other != p && other.EloRating > p.EloRating {
			place++
		}
	}
	n := len(p.PlacementHistory)
	if n == 0 || p.PlacementHistory[n-1].Place != place {
		p.PlacementHistory = append(p.PlacementHistory, domain.PlaceEvent{Place: place, Date: date})
	}
}

func record(st *domain.ResultStats, delta float64) {
	st.RatingDiff += delta
	st.RatingDiffLast = delta
}

// actualScores maps the raw score pair to [0,1] points. Equal scores are
// a draw; when the chart has a score ceiling both distances to it are
// compared, otherwise it degrades to plain win/lose.
func actualScores(b domain.Battle) (Points, Points) {
	if b.P1.Score == b.P2.Score {
		return Draw, Draw
	}
	maxScore := b.Chart.MaxScore
	if maxScore > 0 && b.P1.Score > 0 && b.P2.Score > 0 {
		t1 := maxScore/float64(b.P1.Score) - 1
		t2 := maxScore/float64(b.P2.Score) - 1
		// scores above the derived ceiling would zero the denominator
		if t1+t2 > 0 {
			s1 := clamp01(0.5 + 5*(t2-t1)/(t1+t2))
			return Points(s1), Points(1 - s1)
		}
	}
	if b.P1.Score > b.P2.Score {
		return Win, Lose
	}
	return Lose, Win
}

// perfectionDamping shrinks K toward zero when both sides sit in the
// top percent of the chart's ceiling with near-perfect grades, so that
// trading a handful of greats at the top does not move ratings much.
func perfectionDamping(b domain.Battle) float64 {
	maxScore := b.Chart.MaxScore
	if maxScore <= 0 {
		return 1
	}
	const band = 0.99
	r1 := float64(b.P1.Score) / maxScore
	r2 := float64(b.P2.Score) / maxScore
	if r1 < band || r2 < band {
		return 1
	}
	if b.P1.Grade < domain.GradeSS || b.P2.Grade < domain.GradeSS {
		return 1
	}
	return clamp01((1-r1)/(1-band)) * clamp01((1-r2)/(1-band))
}
