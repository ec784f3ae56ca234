package mem

import (
	"sync"

	"github.com/pumptrack/statserver/internal/domain"
	"github.com/pumptrack/statserver/internal/normalize"
)

// Cache holds the last published snapshot. Updates replace the whole
// snapshot atomically; readers never see a half-applied run.
type Cache struct {
	mu       sync.RWMutex
	valid    bool
	snapshot *domain.Snapshot
	byName   map[string]*domain.Profile
	byID     map[int64]*domain.Profile
	byChart  map[int64]*domain.Chart
}

func New() *Cache {
	return &Cache{
		byName:  make(map[string]*domain.Profile),
		byID:    make(map[int64]*domain.Profile),
		byChart: make(map[int64]*domain.Chart),
	}
}

func (c *Cache) Update(snap *domain.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snap
	c.byName = make(map[string]*domain.Profile, len(snap.Profiles))
	c.byID = make(map[int64]*domain.Profile, len(snap.Profiles))
	c.byChart = make(map[int64]*domain.Chart, len(snap.Charts))
	for _, p := range snap.Profiles {
		c.byName[normalize.Name(p.Name)] = p
		c.byID[p.ID] = p
	}
	for _, chart := range snap.Charts {
		c.byChart[chart.ID] = chart
	}
	c.valid = true
}

func (c *Cache) Snapshot() (*domain.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot, c.valid
}

// Leaderboard returns profiles in canonical rating order.
func (c *Cache) Leaderboard() ([]*domain.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return nil, false
	}
	return c.snapshot.Profiles, true
}

func (c *Cache) GetProfile(id int64) (*domain.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

func (c *Cache) GetProfileByName(name string) (*domain.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byName[normalize.Name(name)]
	return p, ok
}

func (c *Cache) GetChart(id int64) (*domain.Chart, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	chart, ok := c.byChart[id]
	return chart, ok
}

// GetResultStats returns the derived side-table row for a result.
func (c *Cache) GetResultStats(resultID int64) (*domain.ResultStats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return nil, false
	}
	st, ok := c.snapshot.ResultStats[resultID]
	return st, ok
}
