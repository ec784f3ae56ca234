package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pumptrack/statserver/internal/cache/mem"
	"github.com/pumptrack/statserver/internal/domain"
	"github.com/pumptrack/statserver/internal/pipeline"
	"github.com/pumptrack/statserver/internal/storage"
)

var (
	// ErrNotReady is returned before the first snapshot is published.
	ErrNotReady = errors.New("no snapshot computed yet")
	ErrNotFound = errors.New("not found")
)

// StatsService owns the raw inputs and the published snapshot; the
// pipeline itself stays pure.
type StatsService struct {
	players storage.PlayerStorage
	results storage.ResultStorage
	catalog storage.CatalogStorage
	runner  *pipeline.Runner
	cache   *mem.Cache
	log     *logrus.Entry
}

func New(log *logrus.Logger, players storage.PlayerStorage, results storage.ResultStorage, catalog storage.CatalogStorage) *StatsService {
	return &StatsService{
		players: players,
		results: results,
		catalog: catalog,
		runner:  pipeline.NewRunner(log),
		cache:   mem.New(),
		log:     log.WithField("component", "service"),
	}
}

func (s *StatsService) loadInput() (pipeline.Input, error) {
	players, err := s.players.ListPlayers()
	if err != nil {
		return pipeline.Input{}, fmt.Errorf("list players: %w", err)
	}
	charts, err := s.catalog.ListCharts()
	if err != nil {
		return pipeline.Input{}, fmt.Errorf("list charts: %w", err)
	}
	results, err := s.results.ListResults()
	if err != nil {
		return pipeline.Input{}, fmt.Errorf("list results: %w", err)
	}

	in := pipeline.Input{
		Results:       results,
		Players:       make(map[int64]domain.Player, len(players)),
		Catalog:       make(map[int64]pipeline.CatalogChart, len(charts)),
		SinglesLevels: make(map[int]int),
		DoublesLevels: make(map[int]int),
	}
	for _, p := range players {
		in.Players[p.ID] = p
	}
	for _, c := range charts {
		in.Catalog[c.ID] = c
		switch domain.ParseChartType(c.Label) {
		case domain.ChartTypeSingle:
			in.SinglesLevels[c.Level]++
		case domain.ChartTypeDouble:
			in.DoublesLevels[c.Level]++
		}
	}
	return in, nil
}

// Recompute runs the pipeline off the request path and publishes the
// finished snapshot atomically.
func (s *StatsService) Recompute(ctx context.Context) error {
	in, err := s.loadInput()
	if err != nil {
		return err
	}
	s.log.WithField("results", len(in.Results)).Info("recompute scheduled")
	return s.runner.Recompute(ctx, in, s.cache.Update)
}

// RecomputeSync is the synchronous fallback producing identical results.
func (s *StatsService) RecomputeSync(ctx context.Context) error {
	in, err := s.loadInput()
	if err != nil {
		return err
	}
	return s.runner.RecomputeSync(ctx, in, s.cache.Update)
}

func (s *StatsService) Leaderboard() ([]*domain.Profile, error) {
	profiles, ok := s.cache.Leaderboard()
	if !ok {
		return nil, ErrNotReady
	}
	return profiles, nil
}

func (s *StatsService) GetProfile(id int64) (*domain.Profile, error) {
	if _, ok := s.cache.Snapshot(); !ok {
		return nil, ErrNotReady
	}
	p, ok := s.cache.GetProfile(id)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *StatsService) GetProfileByName(name string) (*domain.Profile, error) {
	if _, ok := s.cache.Snapshot(); !ok {
		return nil, ErrNotReady
	}
	p, ok := s.cache.GetProfileByName(name)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *StatsService) GetChart(id int64) (*domain.Chart, error) {
	if _, ok := s.cache.Snapshot(); !ok {
		return nil, ErrNotReady
	}
	chart, ok := s.cache.GetChart(id)
	if !ok {
		return nil, ErrNotFound
	}
	return chart, nil
}

func (s *StatsService) GetResultStats(resultID int64) (*domain.ResultStats, error) {
	st, ok := s.cache.GetResultStats(resultID)
	if !ok {
		if _, ready := s.cache.Snapshot(); !ready {
			return nil, ErrNotReady
		}
		return nil, ErrNotFound
	}
	return st, nil
}
