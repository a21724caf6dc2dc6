package service

import (
	"context"
	"fmt"
	"time"

	"github.com/numdez/daguaCollection/internal/modules/tank/period"
	"github.com/numdez/daguaCollection/internal/modules/tank/repository"
	"github.com/numdez/daguaCollection/internal/modules/tank/types"
)

// Service answers the two read queries. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	repository repository.TankRepository
	now        func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now as the source of "now" for lookback windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repository repository.TankRepository, opts ...Option) *Service {
	s := &Service{repository: repository, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetLatest returns the newest reading of a tank, or types.ErrNotFound.
// When several readings share the newest timestamp the store decides which
// one is returned; callers must not depend on that choice.
func (s *Service) GetLatest(ctx context.Context, tankID int) (types.Reading, error) {
	return s.repository.FindLatest(ctx, tankID)
}

// GetPeriodAverage parses periodName and averages the tank's readings per
// bucket over that period's lookback window. An unknown name fails with
// types.ErrInvalidPeriod before the store is queried.
func (s *Service) GetPeriodAverage(ctx context.Context, tankID int, periodName string) ([]types.Average, error) {
	p, err := period.Parse(periodName)
	if err != nil {
		return nil, err
	}
	return s.GetAverage(ctx, tankID, p)
}

// GetAverage is GetPeriodAverage for an already parsed period.
func (s *Service) GetAverage(ctx context.Context, tankID int, p period.Period) ([]types.Average, error) {
	since := p.WindowStart(s.now())
	readings, err := s.repository.FindSince(ctx, tankID, since)
	if err != nil {
		return nil, fmt.Errorf("average %s for tank %d: %w", p, tankID, err)
	}
	return Aggregate(p, readings), nil
}
