package sqlite

import (
	"time"

	"github.com/pumptrack/statserver/gen/model"
	"github.com/pumptrack/statserver/internal/domain"
	"github.com/pumptrack/statserver/internal/pipeline"
)

func convertPlayers(players []model.Players) []domain.Player {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		converted = append(converted, domain.Player{
			ID:          int64(player.ID),
			Nickname:    player.Nickname,
			ArcadeName:  deref(player.ArcadeName),
			Region:      deref(player.Region),
			Placeholder: player.Placeholder,
		})
	}
	return converted
}

func convertCharts(charts []model.Charts) []pipeline.CatalogChart {
	converted := make([]pipeline.CatalogChart, 0, len(charts))
	for _, chart := range charts {
		c := pipeline.CatalogChart{
			ID:        int64(chart.ID),
			TrackName: chart.TrackName,
			Label:     chart.Label,
			Level:     int(chart.Level),
		}
		if chart.DurationSec != nil {
			c.Duration = time.Duration(*chart.DurationSec) * time.Second
		}
		if chart.MaxTotalSteps != nil {
			c.MaxTotalSteps = int(*chart.MaxTotalSteps)
		}
		converted = append(converted, c)
	}
	return converted
}

func convertResults(results []model.Results) []pipeline.RawResult {
	converted := make([]pipeline.RawResult, 0, len(results))
	for _, r := range results {
		converted = append(converted, pipeline.RawResult{
			ID:             int64(r.ID),
			PlayerID:       int64(r.PlayerID),
			ChartID:        int64(r.ChartID),
			Score:          int64(r.Score),
			Grade:          r.Grade,
			Gained:         r.Gained,
			ExactGainDate:  r.ExactGainDate,
			RankMode:       r.RankMode,
			ModsList:       deref(r.ModsList),
			Perfects:       toInt(r.Perfects),
			Greats:         toInt(r.Greats),
			Goods:          toInt(r.Goods),
			Bads:           toInt(r.Bads),
			Misses:         toInt(r.Misses),
			Combo:          toInt(r.Combo),
			Calories:       r.Calories,
			IsIntermediate: r.IsIntermediate,
		})
	}
	return converted
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toInt(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
