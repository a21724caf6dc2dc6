package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/numdez/daguaCollection/internal/modules/tank/types"
)

// MemoryRepository is an in-process TankRepository with the same ordering
// rules as the SQLite one. Insertion order stands in for the rowid.
type MemoryRepository struct {
	mu       sync.RWMutex
	readings []types.Reading
}

func NewMemoryRepository(readings ...types.Reading) *MemoryRepository {
	r := &MemoryRepository{}
	r.Add(readings...)
	return r
}

// Add appends readings, normalising timestamps to UTC like the SQL store does.
func (r *MemoryRepository) Add(readings ...types.Reading) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range readings {
		rec.RecordedAt = rec.RecordedAt.UTC()
		r.readings = append(r.readings, rec)
	}
}

func (r *MemoryRepository) FindLatest(ctx context.Context, tankID int) (types.Reading, error) {
	if err := ctx.Err(); err != nil {
		return types.Reading{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *types.Reading
	for i := range r.readings {
		rec := &r.readings[i]
		if rec.TankID != tankID {
			continue
		}
		if latest == nil || !rec.RecordedAt.Before(latest.RecordedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return types.Reading{}, types.ErrNotFound
	}
	return *latest, nil
}

func (r *MemoryRepository) FindSince(ctx context.Context, tankID int, since time.Time) ([]types.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []types.Reading
	for _, rec := range r.readings {
		if rec.TankID == tankID && !rec.RecordedAt.Before(since) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})
	return out, nil
}
