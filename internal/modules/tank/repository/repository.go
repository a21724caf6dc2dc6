package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/numdez/daguaCollection/internal/modules/tank/types"
)

//go:embed sql/find-latest.sql
var findLatestSQL string

//go:embed sql/find-since.sql
var findSinceSQL string

// TimeLayout is the canonical UTC form for data_registro. The queries
// compare julianday() instants, so rows in any ParseTime layout filter and
// sort correctly next to it, at millisecond resolution.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// legacyLayout is how MySQL DATETIME columns render when exported as text.
const legacyLayout = "2006-01-02 15:04:05"

// TankRepository is the read side of the reading store.
type TankRepository interface {
	// FindLatest returns the reading with the greatest data_registro, or
	// types.ErrNotFound. Ties go to the row inserted last.
	FindLatest(ctx context.Context, tankID int) (types.Reading, error)
	// FindSince returns readings with data_registro >= since, oldest first.
	// There is no upper bound.
	FindSince(ctx context.Context, tankID int, since time.Time) ([]types.Reading, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) TankRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) FindLatest(ctx context.Context, tankID int) (types.Reading, error) {
	row := r.db.QueryRowContext(ctx, findLatestSQL, tankID)
	rec, err := scanReading(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Reading{}, types.ErrNotFound
	}
	if err != nil {
		return types.Reading{}, fmt.Errorf("find latest reading for tank %d: %w", tankID, err)
	}
	return rec, nil
}

func (r *repositoryImpl) FindSince(ctx context.Context, tankID int, since time.Time) ([]types.Reading, error) {
	rows, err := r.db.QueryContext(ctx, findSinceSQL, tankID, FormatTime(since))
	if err != nil {
		return nil, fmt.Errorf("find readings for tank %d: %w", tankID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close readings rows", "tank_id", tankID, "error", err)
		}
	}()

	var out []types.Reading
	for rows.Next() {
		rec, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading for tank %d: %w", tankID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings for tank %d: %w", tankID, err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReading(s scanner) (types.Reading, error) {
	var rec types.Reading
	var ts string
	if err := s.Scan(&rec.TankID, &ts, &rec.Level, &rec.Temperature, &rec.Purity); err != nil {
		return types.Reading{}, err
	}
	t, err := ParseTime(ts)
	if err != nil {
		return types.Reading{}, err
	}
	rec.RecordedAt = t
	return rec, nil
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime accepts TimeLayout, any RFC3339 variant, and zone-less legacy
// values (read as UTC). The result is always in UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t.UTC(), nil
	}
	t, err2 := time.Parse(legacyLayout, s)
	if err2 != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: RFC3339Nano: %w; legacy: %w", s, err, err2)
	}
	return t, nil
}
