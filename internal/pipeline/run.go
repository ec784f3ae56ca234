// Package pipeline turns a raw history of score submissions into derived
// statistics: leaderboards, calibrated difficulties, profiles with
// experience, achievements, pairwise ratings and skill points.
//
// Run is a pure function over its Input. Stages are strictly sequential;
// the only internal ordering contract is the battle list, which fixes
// the floating-point outcome of the rating replay.
package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pumptrack/statserver/internal/calibrate"
	"github.com/pumptrack/statserver/internal/domain"
	"github.com/pumptrack/statserver/internal/elo"
	"github.com/pumptrack/statserver/internal/progress"
	"github.com/pumptrack/statserver/internal/skill"
)

// Run executes the full pipeline. Cancellation is checked between
// stages; a canceled run publishes nothing.
func Run(ctx context.Context, in Input) (*domain.Snapshot, error) {
	n := normalize(in)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := aggregate(n, in)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	calibrate.Charts(n.charts, a.byPlayer)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	progress.Fill(a.profiles, in.SinglesLevels, in.DoublesLevels)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := make(map[int64]*domain.ResultStats)
	statsFor := func(resultID int64) *domain.ResultStats {
		st, ok := stats[resultID]
		if !ok {
			st = &domain.ResultStats{}
			stats[resultID] = st
		}
		return st
	}

	elo.Replay(n.battles, elo.Env{
		Profile: func(playerID int64) *domain.Profile {
			if p, ok := a.byPlayer[playerID]; ok {
				return p
			}
			// players known only from intermediate results get their
			// profile here
			return a.profile(in.Players[playerID])
		},
		Skip: func(playerID int64) bool {
			player, ok := in.Players[playerID]
			return !ok || player.Placeholder
		},
		Stats: statsFor,
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// profiles created during the replay missed the first Fill
	var late []*domain.Profile
	for _, p := range a.profiles {
		if p.Progress == nil {
			late = append(late, p)
		}
	}
	progress.Fill(late, in.SinglesLevels, in.DoublesLevels)

	skill.Apply(n.charts, a.byPlayer, a.profiles, statsFor)

	profiles := make([]*domain.Profile, len(a.profiles))
	copy(profiles, a.profiles)
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Rating > profiles[j].Rating
	})

	return &domain.Snapshot{
		RunID:       uuid.New(),
		ComputedAt:  time.Now(),
		Charts:      n.charts,
		Profiles:    profiles,
		ResultStats: stats,
	}, nil
}
