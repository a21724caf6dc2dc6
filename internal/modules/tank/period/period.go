// Package period maps an aggregation period to its lookback window and to
// the key that groups readings into buckets.
//
// Keys are derived from the wall clock of the reading's own timestamp.
// Readings come back from the store in UTC, so buckets are UTC days, ISO
// weeks and months.
package period

import (
	"fmt"
	"time"

	"github.com/numdez/daguaCollection/internal/modules/tank/types"
)

// Period is the aggregation granularity. The zero value is not a period.
type Period int

const (
	// Day buckets by calendar date over the last 24 hours.
	Day Period = iota + 1
	// Week buckets by ISO 8601 week over the last 7 days.
	Week
	// Month buckets by calendar month over the last 30 days.
	Month
)

const day = 24 * time.Hour

// All lists the periods in the order they are advertised to callers.
var All = []Period{Day, Week, Month}

// Names returns the accepted tokens, e.g. for error hints.
func Names() []string {
	out := make([]string, 0, len(All))
	for _, p := range All {
		out = append(out, p.String())
	}
	return out
}

// Parse is the only place a period token is interpreted.
func Parse(s string) (Period, error) {
	for _, p := range All {
		if s == p.String() {
			return p, nil
		}
	}
	return 0, &types.InvalidPeriodError{Value: s, Allowed: Names()}
}

func (p Period) String() string {
	switch p {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// Lookback is the trailing window length ending at "now".
func (p Period) Lookback() time.Duration {
	switch p {
	case Day:
		return day
	case Week:
		return 7 * day
	case Month:
		return 30 * day
	}
	panic(fmt.Sprintf("period: lookback of unknown %v", p))
}

// WindowStart is the inclusive lower bound of the window. There is no upper
// bound; readings stamped after now are part of the window.
func (p Period) WindowStart(now time.Time) time.Time {
	return now.Add(-p.Lookback())
}

// Key returns the bucket t falls into for this period.
func (p Period) Key(t time.Time) BucketKey {
	switch p {
	case Day:
		y, m, d := t.Date()
		return BucketKey{Period: Day, Year: y, Month: m, Day: d}
	case Week:
		y, w := t.ISOWeek()
		return BucketKey{Period: Week, Year: y, Week: w}
	case Month:
		y, m, _ := t.Date()
		return BucketKey{Period: Month, Year: y, Month: m}
	}
	panic(fmt.Sprintf("period: key of unknown %v", p))
}

// BucketKey identifies one bucket. Only the fields relevant to Period are
// set: Year/Month/Day for Day, ISO Year/Week for Week, Year/Month for Month.
// The zero values of the unused fields keep keys comparable with ==.
type BucketKey struct {
	Period Period
	Year   int
	Month  time.Month
	Day    int
	Week   int
}

// String renders the key: 2024-01-01, 2024-W01 or 2024-01.
func (k BucketKey) String() string {
	switch k.Period {
	case Day:
		return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
	case Week:
		return fmt.Sprintf("%04d-W%02d", k.Year, k.Week)
	case Month:
		return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
	}
	return fmt.Sprintf("BucketKey(%v)", k.Period)
}

// Less orders keys by period first, then chronologically within a period.
func (k BucketKey) Less(o BucketKey) bool {
	if k.Period != o.Period {
		return k.Period < o.Period
	}
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Week != o.Week {
		return k.Week < o.Week
	}
	if k.Month != o.Month {
		return k.Month < o.Month
	}
	return k.Day < o.Day
}
