package domain

import (
	"fmt"
	"time"
)

// ChartType is the pad layout of a chart.
type ChartType int8

const (
	ChartTypeUnknown ChartType = iota
	ChartTypeSingle
	ChartTypeDouble
	ChartTypeCoop
)

func (t ChartType) String() string {
	switch t {
	case ChartTypeSingle:
		return "S"
	case ChartTypeDouble:
		return "D"
	case ChartTypeCoop:
		return "C"
	}
	return "?"
}

// ParseChartType reads the leading letter of a chart label ("S20", "D24",
// "C2x4").
func ParseChartType(label string) ChartType {
	if label == "" {
		return ChartTypeUnknown
	}
	switch label[0] {
	case 'S', 's':
		return ChartTypeSingle
	case 'D', 'd':
		return ChartTypeDouble
	case 'C', 'c':
		return ChartTypeCoop
	}
	return ChartTypeUnknown
}

// Chart is one song+difficulty leaderboard.
type Chart struct {
	ID        int64
	TrackName string
	Label     string
	Type      ChartType
	Level     int

	Duration      time.Duration
	MaxTotalSteps int

	// InterpolatedDifficulty is the effective difficulty recalibrated from
	// player accuracy curves; equals Level until the calibrator runs.
	InterpolatedDifficulty float64

	// Results holds the currently best result per (player, rank mode),
	// sorted by score descending.
	Results []*Result

	// History keeps every normalized result ever seen on the chart,
	// superseded ones included, in submission order.
	History []*Result

	// MaxScore is the theoretical score ceiling derived from the most
	// accurate plays; zero when nothing on the chart can establish it.
	MaxScore float64

	LastResultAt time.Time
}

func (c *Chart) Name() string {
	return fmt.Sprintf("%s %s", c.TrackName, c.Label)
}
