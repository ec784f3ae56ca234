package storage

import (
	"github.com/pumptrack/statserver/internal/domain"
	"github.com/pumptrack/statserver/internal/pipeline"
)

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
}

type ResultStorage interface {
	// ListResults returns every raw submission in stable submission
	// order.
	ListResults() ([]pipeline.RawResult, error)
}

type CatalogStorage interface {
	ListCharts() ([]pipeline.CatalogChart, error)
}
