package pipeline

import (
	"math"

	"github.com/pumptrack/statserver/internal/achieve"
	"github.com/pumptrack/statserver/internal/domain"
)

// aggregated is the output of stage two: one profile per player with at
// least one qualifying result, in creation order.
type aggregated struct {
	profiles []*domain.Profile
	byPlayer map[int64]*domain.Profile
}

func aggregate(n *normalized, in Input) *aggregated {
	a := &aggregated{byPlayer: make(map[int64]*domain.Profile)}
	for _, chart := range n.charts {
		for _, res := range chart.Results {
			player, ok := in.Players[res.PlayerID]
			if !ok || player.Placeholder || res.IsIntermediate {
				continue
			}
			p := a.profile(player)
			p.PlayCount++
			if res.Accuracy != nil {
				p.AccuracySum += *res.Accuracy
				p.AccuracyCount++
				if !res.RankMode {
					p.AccuracyPoints = append(p.AccuracyPoints, domain.AccuracyPoint{
						Level:    chart.Level,
						Accuracy: *res.Accuracy,
					})
				}
			}
			if res.Grade != domain.GradeUnknown {
				p.Grades[res.Grade]++
			}
			if res.BestGradeOnChart {
				p.BestGrades = append(p.BestGrades, domain.GradeMark{
					ChartID: chart.ID,
					Type:    chart.Type,
					Level:   chart.Level,
					Grade:   res.Grade,
				})
				// repeats of an already-held grade grant nothing
				p.Exp += experience(chart, res.Grade)
			}
			achieve.Apply(res, chart, p)
		}
	}
	return a
}

func (a *aggregated) profile(player domain.Player) *domain.Profile {
	if p, ok := a.byPlayer[player.ID]; ok {
		return p
	}
	name := player.Nickname
	if name == "" {
		name = player.ArcadeName
	}
	p := &domain.Profile{
		ID:     player.ID,
		Name:   name,
		Grades: make(map[domain.Grade]int),
	}
	a.byPlayer[player.ID] = p
	a.profiles = append(a.profiles, p)
	return p
}

func experience(chart *domain.Chart, grade domain.Grade) float64 {
	w := grade.Weight()
	if chart.Type == domain.ChartTypeCoop {
		return float64(chart.Level) * 1000 * w / 8
	}
	return math.Pow(float64(chart.Level), 2.31) * w / 9
}
