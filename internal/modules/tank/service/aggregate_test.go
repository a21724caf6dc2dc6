package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numdez/daguaCollection/internal/modules/tank/period"
	"github.com/numdez/daguaCollection/internal/modules/tank/types"
)

func TestAggregate_Empty(t *testing.T) {
	for _, p := range period.All {
		got := Aggregate(p, nil)
		assert.NotNil(t, got, p.String())
		assert.Empty(t, got, p.String())
	}
}

func TestAggregate_SortsBucketsRegardlessOfInputOrder(t *testing.T) {
	in := []types.Reading{
		reading(1, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 3, 3, 3),
		reading(1, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 1, 1, 1),
		reading(1, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), 2, 2, 2),
		reading(1, time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), 5, 5, 5),
	}

	got := Aggregate(period.Month, in)
	assert.Equal(t, []types.Average{
		{Period: "2024-01", Level: 3, Temperature: 3, Purity: 3},
		{Period: "2024-02", Level: 2, Temperature: 2, Purity: 2},
		{Period: "2024-03", Level: 3, Temperature: 3, Purity: 3},
	}, got)
}

func TestAggregate_MeansAreIndependentPerMeasurement(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []types.Reading{
		reading(1, day.Add(1*time.Hour), 1, 10, 100),
		reading(1, day.Add(2*time.Hour), 2, 20, 90),
		reading(1, day.Add(3*time.Hour), 2, 40, 95),
	}

	got := Aggregate(period.Day, in)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-01", got[0].Period)
	assert.InDelta(t, 5.0/3.0, got[0].Level, 1e-12)
	assert.InDelta(t, 70.0/3.0, got[0].Temperature, 1e-12)
	assert.InDelta(t, 95.0, got[0].Purity, 1e-12)
}

func TestAggregate_WeekAcrossYearBoundary(t *testing.T) {
	in := []types.Reading{
		reading(1, time.Date(2024, 12, 29, 12, 0, 0, 0, time.UTC), 10, 10, 10), // 2024-W52
		reading(1, time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC), 20, 20, 20), // 2025-W01
		reading(1, time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC), 40, 40, 40),   // 2025-W01
	}

	got := Aggregate(period.Week, in)
	assert.Equal(t, []types.Average{
		{Period: "2024-W52", Level: 10, Temperature: 10, Purity: 10},
		{Period: "2025-W01", Level: 30, Temperature: 30, Purity: 30},
	}, got)
}

func TestAggregate_NoZeroFilledGaps(t *testing.T) {
	in := []types.Reading{
		reading(1, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 1, 1, 1),
		reading(1, time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC), 4, 4, 4),
	}

	got := Aggregate(period.Day, in)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01", got[0].Period)
	assert.Equal(t, "2024-01-04", got[1].Period)
}
