package pipeline

import (
	"sort"

	"github.com/pumptrack/statserver/internal/domain"
)

// normalized is the output of stage one: typed charts with active
// leaderboards plus the battle list in generation order. Battle order is
// load-bearing: the rating replay depends on it for determinism.
type normalized struct {
	charts     []*domain.Chart
	chartsByID map[int64]*domain.Chart
	battles    []domain.Battle
}

type bestKey struct {
	playerID int64
	chartID  int64
}

func normalize(in Input) *normalized {
	n := &normalized{chartsByID: make(map[int64]*domain.Chart)}
	best := make(map[bestKey]*domain.Result)
	for i := range in.Results {
		n.consume(&in.Results[i], in, best)
	}
	for _, chart := range n.charts {
		chart.MaxScore = maxTheoreticalScore(chart)
	}
	return n
}

func (n *normalized) consume(raw *RawResult, in Input, best map[bestKey]*domain.Result) {
	player, ok := in.Players[raw.PlayerID]
	if !ok {
		// unresolved player reference, drop without error
		return
	}
	cat, ok := in.Catalog[raw.ChartID]
	if !ok {
		return
	}
	chart := n.chart(cat)
	res := newResult(raw, chart)
	chart.History = append(chart.History, res)
	if res.Gained.After(chart.LastResultAt) {
		chart.LastResultAt = res.Gained
	}

	// best grade per (player, chart); >= so the later result wins ties
	bk := bestKey{playerID: raw.PlayerID, chartID: chart.ID}
	if cur, tracked := best[bk]; !tracked || res.Grade >= cur.Grade {
		if cur != nil {
			cur.BestGradeOnChart = false
		}
		res.BestGradeOnChart = true
		best[bk] = res
	}

	slot := -1
	for i, r := range chart.Results {
		if r.PlayerID == res.PlayerID && r.RankMode == res.RankMode {
			slot = i
			break
		}
	}
	if slot >= 0 {
		if res.Score <= chart.Results[slot].Score {
			return
		}
		// the superseded result leaves the leaderboard; battles already
		// recorded against it stand
		chart.Results = append(chart.Results[:slot], chart.Results[slot+1:]...)
	}
	if player.Placeholder && len(chart.Results) > 0 && res.Score < chart.Results[0].Score {
		// placeholder accounts only ever hold the tie-for-first slot
		return
	}

	// snapshot the active list before inserting: battles are generated
	// against it in this order, and the insert below must not alias it
	opponents := make([]*domain.Result, len(chart.Results))
	copy(opponents, chart.Results)

	at := sort.Search(len(chart.Results), func(i int) bool {
		return chart.Results[i].Score < res.Score
	})
	chart.Results = append(chart.Results, nil)
	copy(chart.Results[at+1:], chart.Results[at:])
	chart.Results[at] = res

	for _, opp := range opponents {
		if opp.PlayerID == res.PlayerID || opp.RankMode != res.RankMode {
			continue
		}
		n.battles = append(n.battles, domain.Battle{Chart: chart, P1: res, P2: opp})
	}
}

func (n *normalized) chart(cat CatalogChart) *domain.Chart {
	if c, ok := n.chartsByID[cat.ID]; ok {
		return c
	}
	c := &domain.Chart{
		ID:                     cat.ID,
		TrackName:              cat.TrackName,
		Label:                  cat.Label,
		Type:                   domain.ParseChartType(cat.Label),
		Level:                  cat.Level,
		Duration:               cat.Duration,
		MaxTotalSteps:          cat.MaxTotalSteps,
		InterpolatedDifficulty: float64(cat.Level),
	}
	n.chartsByID[c.ID] = c
	n.charts = append(n.charts, c)
	return c
}

func newResult(raw *RawResult, chart *domain.Chart) *domain.Result {
	res := &domain.Result{
		ID:       raw.ID,
		PlayerID: raw.PlayerID,
		ChartID:  raw.ChartID,
		Score:    raw.Score,
		Grade:    domain.ParseGrade(raw.Grade),
		Gained:   raw.Gained,
		RankMode: raw.RankMode,
		Hits: domain.HitCounts{
			Perfects: raw.Perfects,
			Greats:   raw.Greats,
			Goods:    raw.Goods,
			Bads:     raw.Bads,
			Misses:   raw.Misses,
		},
		Combo:          raw.Combo,
		Calories:       raw.Calories,
		Mods:           raw.ModsList,
		IsExactDate:    raw.ExactGainDate,
		IsIntermediate: raw.IsIntermediate,
	}
	backfillHits(&res.Hits, chart.MaxTotalSteps)
	res.Accuracy = deriveAccuracy(res.Hits)
	return res
}

// backfillHits reconstructs a single missing judgement category from the
// chart's total step count.
func backfillHits(h *domain.HitCounts, maxSteps int) {
	if maxSteps <= 0 {
		return
	}
	known, sum := h.Known()
	if known != 4 {
		return
	}
	missing := maxSteps - sum
	if missing < 0 {
		missing = 0
	}
	for _, slot := range []**int{&h.Perfects, &h.Greats, &h.Goods, &h.Bads, &h.Misses} {
		if *slot == nil {
			v := missing
			*slot = &v
			return
		}
	}
}

func deriveAccuracy(h domain.HitCounts) *float64 {
	known, total := h.Known()
	if known != 5 || total == 0 {
		return nil
	}
	weighted := float64(*h.Perfects) + 0.8*float64(*h.Greats) + 0.5*float64(*h.Goods) + 0.2*float64(*h.Bads)
	acc := weighted / float64(total) * 100
	return &acc
}

// maxTheoreticalScore derives the chart's score ceiling from its most
// accurate active plays, falling back to the best raw score when nothing
// on the chart carries accuracy.
func maxTheoreticalScore(chart *domain.Chart) float64 {
	var best float64
	for _, r := range chart.Results {
		if r.RankMode || r.Accuracy == nil || *r.Accuracy <= 0 {
			continue
		}
		if v := float64(r.Score) / *r.Accuracy * 100; v > best {
			best = v
		}
	}
	if best > 0 {
		return best
	}
	for _, r := range chart.Results {
		if float64(r.Score) > best {
			best = float64(r.Score)
		}
	}
	return best
}
