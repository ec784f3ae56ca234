package web

import (
	"time"

	"github.com/pumptrack/statserver/internal/domain"
)

type leaderboardEntry struct {
	Place     int     `json:"place"`
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Rating    float64 `json:"rating"`
	EloRating float64 `json:"eloRating"`
	Exp       float64 `json:"exp"`
	PlayCount int     `json:"playCount"`
	Accuracy  float64 `json:"accuracy"`
}

type historyPoint struct {
	Rating float64   `json:"rating,omitempty"`
	Place  int       `json:"place,omitempty"`
	Date   time.Time `json:"date"`
}

type profileResponse struct {
	leaderboardEntry

	Grades           map[string]int     `json:"grades"`
	Achievements     map[string]float64 `json:"achievements"`
	ProgressBonus    float64            `json:"progressBonus"`
	SkillTotal       float64            `json:"skillTotal"`
	RatingHistory    []historyPoint     `json:"ratingHistory"`
	PlacementHistory []historyPoint     `json:"placementHistory"`
}

type chartResult struct {
	ResultID int64   `json:"resultId"`
	PlayerID int64   `json:"playerId"`
	Score    int64   `json:"score"`
	Grade    string  `json:"grade"`
	Accuracy float64 `json:"accuracy,omitempty"`
	RankMode bool    `json:"rankMode"`
}

type chartResponse struct {
	ID                     int64         `json:"id"`
	TrackName              string        `json:"trackName"`
	Label                  string        `json:"label"`
	Level                  int           `json:"level"`
	InterpolatedDifficulty float64       `json:"interpolatedDifficulty"`
	MaxScore               float64       `json:"maxScore"`
	LastResultAt           time.Time     `json:"lastResultAt"`
	Results                []chartResult `json:"results"`
}

type resultStatsResponse struct {
	ResultID       int64   `json:"resultId"`
	StartingRating float64 `json:"startingRating"`
	RatingDiff     float64 `json:"ratingDiff"`
	RatingDiffLast float64 `json:"ratingDiffLast"`
	SkillPoints    float64 `json:"skillPoints"`
}

func convertEntry(place int, p *domain.Profile) leaderboardEntry {
	return leaderboardEntry{
		Place:     place,
		ID:        p.ID,
		Name:      p.Name,
		Rating:    p.Rating,
		EloRating: p.EloRating,
		Exp:       p.Exp,
		PlayCount: p.PlayCount,
		Accuracy:  p.Accuracy(),
	}
}

func convertProfile(place int, p *domain.Profile) profileResponse {
	resp := profileResponse{
		leaderboardEntry: convertEntry(place, p),
		Grades:           make(map[string]int, len(p.Grades)),
		Achievements:     make(map[string]float64, len(p.Achievements)),
		SkillTotal:       p.SkillTotal,
	}
	for g, n := range p.Grades {
		resp.Grades[g.String()] = n
	}
	for name, state := range p.Achievements {
		resp.Achievements[name] = state.Progress
	}
	if p.Progress != nil {
		resp.ProgressBonus = p.Progress.Bonus
	}
	for _, e := range p.RatingHistory {
		resp.RatingHistory = append(resp.RatingHistory, historyPoint{Rating: e.Rating, Date: e.Date})
	}
	for _, e := range p.PlacementHistory {
		resp.PlacementHistory = append(resp.PlacementHistory, historyPoint{Place: e.Place, Date: e.Date})
	}
	return resp
}

func convertChart(c *domain.Chart) chartResponse {
	resp := chartResponse{
		ID:                     c.ID,
		TrackName:              c.TrackName,
		Label:                  c.Label,
		Level:                  c.Level,
		InterpolatedDifficulty: c.InterpolatedDifficulty,
		MaxScore:               c.MaxScore,
		LastResultAt:           c.LastResultAt,
		Results:                make([]chartResult, 0, len(c.Results)),
	}
	for _, r := range c.Results {
		if r.IsIntermediate {
			continue
		}
		cr := chartResult{
			ResultID: r.ID,
			PlayerID: r.PlayerID,
			Score:    r.Score,
			Grade:    r.Grade.String(),
			RankMode: r.RankMode,
		}
		if r.Accuracy != nil {
			cr.Accuracy = *r.Accuracy
		}
		resp.Results = append(resp.Results, cr)
	}
	return resp
}
