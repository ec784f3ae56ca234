// Package achieve holds the achievement catalog: a closed registry of
// kinds fixed at build time, each advancing its state through a pure
// transition function.
package achieve

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pumptrack/statserver/internal/domain"
)

// Achievement is one catalog entry. Advance must be pure: it derives the
// next state from the result, chart, current state and profile only.
type Achievement struct {
	Name    string
	Advance func(res *domain.Result, chart *domain.Chart, state domain.AchievementState, p *domain.Profile) domain.AchievementState
}

// Catalog is applied in declaration order for every aggregated result.
var Catalog = []Achievement{
	{Name: "perfect-collector", Advance: perfectCollector},
	{Name: "grade-climber", Advance: gradeClimber},
	{Name: "marathon", Advance: marathon},
	{Name: "combo-artist", Advance: comboArtist},
	{Name: "explorer", Advance: explorer},
}

// Apply advances every achievement for one result. Progress is a
// ratchet: whatever a transition returns, the stored value never drops.
func Apply(res *domain.Result, chart *domain.Chart, p *domain.Profile) {
	if p.Achievements == nil {
		p.Achievements = make(map[string]domain.AchievementState, len(Catalog))
	}
	for _, a := range Catalog {
		state := p.Achievements[a.Name]
		next := a.Advance(res, chart, state, p)
		if next.Progress < state.Progress {
			next.Progress = state.Progress
		}
		if next.Progress > 100 {
			next.Progress = 100
		}
		if next.Progress < 0 {
			next.Progress = 0
		}
		p.Achievements[a.Name] = next
	}
}

// perfectCollector: earn 50 SSS grades.
func perfectCollector(res *domain.Result, _ *domain.Chart, state domain.AchievementState, _ *domain.Profile) domain.AchievementState {
	if res.Grade == domain.GradeSSS && res.BestGradeOnChart {
		state.Count++
	}
	state.Progress = float64(state.Count) * 2
	return state
}

// gradeClimber: reach level 28 with at least an A.
func gradeClimber(res *domain.Result, chart *domain.Chart, state domain.AchievementState, _ *domain.Profile) domain.AchievementState {
	if res.Grade >= domain.GradeA && chart.Level > state.Count {
		state.Count = chart.Level
	}
	state.Progress = float64(state.Count) / 28 * 100
	return state
}

// marathon: play a thousand games.
func marathon(_ *domain.Result, _ *domain.Chart, state domain.AchievementState, _ *domain.Profile) domain.AchievementState {
	state.Count++
	state.Progress = float64(state.Count) / 10
	return state
}

// comboArtist: land an 800 note combo.
func comboArtist(res *domain.Result, _ *domain.Chart, state domain.AchievementState, _ *domain.Profile) domain.AchievementState {
	if res.Combo != nil && float64(*res.Combo) > state.Best {
		state.Best = float64(*res.Combo)
	}
	state.Progress = state.Best / 8
	return state
}

// explorer: play 400 distinct charts.
func explorer(res *domain.Result, chart *domain.Chart, state domain.AchievementState, _ *domain.Profile) domain.AchievementState {
	if state.Charts == nil {
		state.Charts = mapset.NewThreadUnsafeSet[int64]()
	}
	state.Charts.Add(chart.ID)
	state.Progress = float64(state.Charts.Cardinality()) / 4
	return state
}
