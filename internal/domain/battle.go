package domain

import (
	"time"

	"github.com/google/uuid"
)

// Battle is an implied pairwise comparison between two active results on
// the same chart and rank mode. Battles are transient: generated during
// normalization, consumed by the rating replay, never stored.
type Battle struct {
	Chart *Chart
	P1    *Result
	P2    *Result
}

// Date is the battle's effective timestamp, the later of the two results.
func (b Battle) Date() time.Time {
	if b.P2.Gained.After(b.P1.Gained) {
		return b.P2.Gained
	}
	return b.P1.Gained
}

// Snapshot is the atomic output of one full pipeline run.
type Snapshot struct {
	RunID      uuid.UUID
	ComputedAt time.Time

	Charts   []*Chart
	Profiles []*Profile

	// ResultStats carries per-result derived values keyed by result id.
	ResultStats map[int64]*ResultStats
}
