package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/pumptrack/statserver/internal/domain"
)

// ErrBusy is returned when a recompute is already in flight.
var ErrBusy = errors.New("recompute already in progress")

// Runner executes recomputations off the caller's path. At most one runs
// at a time; a finished snapshot is handed to the publish callback whole,
// never partially.
type Runner struct {
	log *logrus.Entry

	mu      sync.Mutex
	running bool
}

func NewRunner(log *logrus.Logger) *Runner {
	return &Runner{log: log.WithField("component", "pipeline")}
}

// Recompute runs the pipeline on a background goroutine. A failed or
// canceled run publishes nothing, leaving the caller's previous snapshot
// in place.
func (r *Runner) Recompute(ctx context.Context, in Input, publish func(*domain.Snapshot)) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrBusy
	}
	r.running = true
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			r.running = false
			r.mu.Unlock()
		}()
		snap, err := Run(ctx, in)
		if err != nil {
			r.log.WithError(err).Error("recompute failed, previous snapshot stays")
			return
		}
		publish(snap)
		r.log.WithFields(logrus.Fields{
			"run":      snap.RunID,
			"charts":   len(snap.Charts),
			"profiles": len(snap.Profiles),
		}).Info("snapshot published")
	}()
	return nil
}

// RecomputeSync produces identical results on the caller's goroutine,
// for hosts without a background executor.
func (r *Runner) RecomputeSync(ctx context.Context, in Input, publish func(*domain.Snapshot)) error {
	snap, err := Run(ctx, in)
	if err != nil {
		return err
	}
	publish(snap)
	return nil
}
