package elo

import (
	"math"
	"testing"
	"time"

	"github.com/pumptrack/statserver/internal/domain"
)

type replayFixture struct {
	profiles map[int64]*domain.Profile
	stats    map[int64]*domain.ResultStats
	skip     map[int64]bool
}

func newReplayFixture() *replayFixture {
	return &replayFixture{
		profiles: make(map[int64]*domain.Profile),
		stats:    make(map[int64]*domain.ResultStats),
		skip:     make(map[int64]bool),
	}
}

func (f *replayFixture) env() Env {
	return Env{
		Profile: func(playerID int64) *domain.Profile {
			p, ok := f.profiles[playerID]
			if !ok {
				p = &domain.Profile{ID: playerID}
				f.profiles[playerID] = p
			}
			return p
		},
		Skip: func(playerID int64) bool { return f.skip[playerID] },
		Stats: func(resultID int64) *domain.ResultStats {
			st, ok := f.stats[resultID]
			if !ok {
				st = &domain.ResultStats{}
				f.stats[resultID] = st
			}
			return st
		},
	}
}

func battleOn(chart *domain.Chart, r1, r2 *domain.Result) domain.Battle {
	return domain.Battle{Chart: chart, P1: r1, P2: r2}
}

func TestReplaySingleBattle(t *testing.T) {
	chart := &domain.Chart{ID: 1, Level: 20, InterpolatedDifficulty: 20, MaxScore: 950000}
	r1 := &domain.Result{ID: 11, PlayerID: 1, ChartID: 1, Score: 900000, Grade: domain.GradeS, Gained: time.Unix(1000, 0)}
	r2 := &domain.Result{ID: 12, PlayerID: 2, ChartID: 1, Score: 850000, Grade: domain.GradeA, Gained: time.Unix(2000, 0)}

	f := newReplayFixture()
	Replay([]domain.Battle{battleOn(chart, r1, r2)}, f.env())

	p1 := f.profiles[1]
	p2 := f.profiles[2]
	if p1.EloRating <= Baseline {
		t.Fatalf("winner rating = %v, want above baseline", p1.EloRating)
	}
	if p2.EloRating >= Baseline {
		t.Fatalf("loser rating = %v, want below baseline", p2.EloRating)
	}
	d1 := p1.EloRating - Baseline
	d2 := Baseline - p2.EloRating
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("deltas not symmetric in magnitude: +%v vs -%v", d1, d2)
	}
	if f.stats[11].RatingDiff <= 0 {
		t.Errorf("winner ratingDiff = %v, want positive", f.stats[11].RatingDiff)
	}
	if f.stats[12].RatingDiff >= 0 {
		t.Errorf("loser ratingDiff = %v, want negative", f.stats[12].RatingDiff)
	}
	if f.stats[11].StartingRating != Baseline || f.stats[12].StartingRating != Baseline {
		t.Errorf("starting ratings = %v, %v, want baseline", f.stats[11].StartingRating, f.stats[12].StartingRating)
	}
	if len(p1.RatingHistory) != 1 || p1.RatingHistory[0].Date != time.Unix(2000, 0) {
		t.Errorf("rating history should hold one event at the later result date, got %+v", p1.RatingHistory)
	}
}

func TestReplaySSSNeverLoses(t *testing.T) {
	chart := &domain.Chart{ID: 1, Level: 20, InterpolatedDifficulty: 20, MaxScore: 950000}
	// perfect grade on the lower score: its computed delta is negative
	// and must clamp to zero
	r1 := &domain.Result{ID: 11, PlayerID: 1, ChartID: 1, Score: 900000, Grade: domain.GradeS}
	r2 := &domain.Result{ID: 12, PlayerID: 2, ChartID: 1, Score: 850000, Grade: domain.GradeSSS}

	f := newReplayFixture()
	Replay([]domain.Battle{battleOn(chart, r1, r2)}, f.env())

	if got := f.profiles[2].EloRating; got != Baseline {
		t.Errorf("SSS holder rating = %v, want unchanged %v", got, Baseline)
	}
	if got := f.stats[12].RatingDiff; got != 0 {
		t.Errorf("SSS holder ratingDiff = %v, want 0", got)
	}
	if f.profiles[1].EloRating <= Baseline {
		t.Errorf("winner rating = %v, want above baseline", f.profiles[1].EloRating)
	}
}

func TestReplayPairRecomputeIsIncremental(t *testing.T) {
	chart := &domain.Chart{ID: 1, Level: 15, InterpolatedDifficulty: 15, MaxScore: 1000000}
	r1 := &domain.Result{ID: 11, PlayerID: 1, ChartID: 1, Score: 900000, Grade: domain.GradeS}
	r2 := &domain.Result{ID: 12, PlayerID: 2, ChartID: 1, Score: 850000, Grade: domain.GradeA}
	// player 2 improves and battles the same opponent again
	r2b := &domain.Result{ID: 13, PlayerID: 2, ChartID: 1, Score: 950000, Grade: domain.GradeS}

	f := newReplayFixture()
	Replay([]domain.Battle{
		battleOn(chart, r1, r2),
		battleOn(chart, r2b, r1),
	}, f.env())

	// the pair's contribution must equal the second battle's full value,
	// not the sum of both
	total := (f.profiles[1].EloRating - Baseline) + (f.profiles[2].EloRating - Baseline)
	if math.Abs(total) > 1e-9 {
		t.Errorf("pair contributions do not cancel: net %v", total)
	}
}

func TestReplayEqualScoresDraw(t *testing.T) {
	chart := &domain.Chart{ID: 1, Level: 20, InterpolatedDifficulty: 20, MaxScore: 950000}
	r1 := &domain.Result{ID: 11, PlayerID: 1, ChartID: 1, Score: 900000, Grade: domain.GradeS}
	r2 := &domain.Result{ID: 12, PlayerID: 2, ChartID: 1, Score: 900000, Grade: domain.GradeS}

	f := newReplayFixture()
	Replay([]domain.Battle{battleOn(chart, r1, r2)}, f.env())

	// a draw at equal ratings moves nothing
	if got := f.profiles[1].EloRating; got != Baseline {
		t.Errorf("p1 rating = %v, want unchanged %v", got, Baseline)
	}
	if got := f.profiles[2].EloRating; got != Baseline {
		t.Errorf("p2 rating = %v, want unchanged %v", got, Baseline)
	}
	if got := f.stats[11].RatingDiff; got != 0 {
		t.Errorf("p1 ratingDiff = %v, want 0", got)
	}
	if got := f.stats[12].RatingDiff; got != 0 {
		t.Errorf("p2 ratingDiff = %v, want 0", got)
	}
	if len(f.profiles[1].RatingHistory) != 0 {
		t.Errorf("unchanged rating must not append history, got %+v", f.profiles[1].RatingHistory)
	}
}

func TestReplayPerfectionDamping(t *testing.T) {
	chart := &domain.Chart{ID: 1, Level: 20, InterpolatedDifficulty: 20, MaxScore: 1000000}
	battleWithGrades := func(g1, g2 domain.Grade) (*replayFixture, float64) {
		r1 := &domain.Result{ID: 11, PlayerID: 1, ChartID: 1, Score: 998000, Grade: g1}
		r2 := &domain.Result{ID: 12, PlayerID: 2, ChartID: 1, Score: 995000, Grade: g2}
		f := newReplayFixture()
		Replay([]domain.Battle{battleOn(chart, r1, r2)}, f.env())
		return f, f.profiles[1].EloRating - Baseline
	}

	_, undamped := battleWithGrades(domain.GradeS, domain.GradeA)
	damped, dampedDelta := battleWithGrades(domain.GradeSSS, domain.GradeSS)

	if undamped <= 0 || dampedDelta <= 0 {
		t.Fatalf("winner deltas = %v, %v, want both positive", undamped, dampedDelta)
	}
	// both scores in the top percent at SS+: K shrinks by the product of
	// the distances to the ceiling, here 0.2 * 0.5
	if dampedDelta >= undamped/5 {
		t.Errorf("damped delta %v, want well under the undamped %v", dampedDelta, undamped)
	}
	if math.Abs(dampedDelta-0.1*undamped) > 1e-6 {
		t.Errorf("damped delta %v, want %v", dampedDelta, 0.1*undamped)
	}
	if got := Baseline - damped.profiles[2].EloRating; math.Abs(got-dampedDelta) > 1e-9 {
		t.Errorf("loser delta %v not symmetric with %v", got, dampedDelta)
	}
}

func TestReplayDampingRequiresPerfectGrades(t *testing.T) {
	chart := &domain.Chart{ID: 1, Level: 20, InterpolatedDifficulty: 20, MaxScore: 1000000}
	// top-percent scores but one side below SS: full K applies
	r1 := &domain.Result{ID: 11, PlayerID: 1, ChartID: 1, Score: 998000, Grade: domain.GradeS}
	r2 := &domain.Result{ID: 12, PlayerID: 2, ChartID: 1, Score: 995000, Grade: domain.GradeSS}
	f := newReplayFixture()
	Replay([]domain.Battle{battleOn(chart, r1, r2)}, f.env())

	delta := f.profiles[1].EloRating - Baseline
	// s1 clamps to 1, so the winner takes the full half-K
	if math.Abs(delta-13.75) > 1e-9 {
		t.Errorf("winner delta = %v, want the undamped 13.75", delta)
	}
}

func TestReplaySkipsFlaggedPlayers(t *testing.T) {
	chart := &domain.Chart{ID: 1, Level: 20, InterpolatedDifficulty: 20, MaxScore: 950000}
	r1 := &domain.Result{ID: 11, PlayerID: 1, ChartID: 1, Score: 900000, Grade: domain.GradeS}
	r2 := &domain.Result{ID: 12, PlayerID: 2, ChartID: 1, Score: 850000, Grade: domain.GradeA}

	f := newReplayFixture()
	f.skip[2] = true
	Replay([]domain.Battle{battleOn(chart, r1, r2)}, f.env())

	if len(f.profiles) != 0 {
		t.Errorf("no profiles should be touched, got %d", len(f.profiles))
	}
}

func TestReplayRatingFloor(t *testing.T) {
	// grind one player down through repeated losses on many charts;
	// whatever happens the floor holds
	var battles []domain.Battle
	for i := int64(0); i < 300; i++ {
		chart := &domain.Chart{ID: i, Level: 24, InterpolatedDifficulty: 24}
		r1 := &domain.Result{ID: 1000 + i*2, PlayerID: 1, ChartID: i, Score: 999000, Grade: domain.GradeSSS}
		r2 := &domain.Result{ID: 1001 + i*2, PlayerID: 2, ChartID: i, Score: 100, Grade: domain.GradeF}
		battles = append(battles, battleOn(chart, r1, r2))
	}
	f := newReplayFixture()
	Replay(battles, f.env())

	if got := f.profiles[2].EloRating; got < Floor {
		t.Errorf("rating = %v, below floor %v", got, Floor)
	}
}
