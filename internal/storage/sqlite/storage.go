package sqlite

import (
	"database/sql"

	"github.com/pumptrack/statserver/gen/model"
	"github.com/pumptrack/statserver/gen/table"
	"github.com/pumptrack/statserver/internal/domain"
	"github.com/pumptrack/statserver/internal/pipeline"
	"github.com/pumptrack/statserver/internal/storage"
)

type Storage struct {
	db *sql.DB
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.ResultStorage = (*Storage)(nil)
var _ storage.CatalogStorage = (*Storage)(nil)

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		Query(s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayers(players), nil
}

func (s *Storage) ListResults() ([]pipeline.RawResult, error) {
	var results []model.Results
	err := table.Results.
		SELECT(table.Results.AllColumns).
		FROM(table.Results).
		ORDER_BY(table.Results.ID.ASC()).
		Query(s.db, &results)
	if err != nil {
		return nil, err
	}
	return convertResults(results), nil
}

func (s *Storage) ListCharts() ([]pipeline.CatalogChart, error) {
	var charts []model.Charts
	err := table.Charts.
		SELECT(table.Charts.AllColumns).
		FROM(table.Charts).
		Query(s.db, &charts)
	if err != nil {
		return nil, err
	}
	return convertCharts(charts), nil
}
