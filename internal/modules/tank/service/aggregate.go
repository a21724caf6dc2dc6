package service

import (
	"sort"

	"github.com/numdez/daguaCollection/internal/modules/tank/period"
	"github.com/numdez/daguaCollection/internal/modules/tank/types"
)

type accumulator struct {
	count       int
	level       float64
	temperature float64
	purity      float64
}

func (a *accumulator) add(r types.Reading) {
	a.count++
	a.level += r.Level
	a.temperature += r.Temperature
	a.purity += r.Purity
}

// Aggregate groups readings by p's bucket key and returns the arithmetic
// mean of each measurement per bucket, ordered by key. Buckets without
// readings are absent. The result is never nil.
func Aggregate(p period.Period, readings []types.Reading) []types.Average {
	buckets := make(map[period.BucketKey]*accumulator)
	for _, r := range readings {
		key := p.Key(r.RecordedAt)
		acc, ok := buckets[key]
		if !ok {
			acc = &accumulator{}
			buckets[key] = acc
		}
		acc.add(r)
	}

	keys := make([]period.BucketKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	out := make([]types.Average, 0, len(keys))
	for _, k := range keys {
		acc := buckets[k]
		n := float64(acc.count)
		out = append(out, types.Average{
			Period:      k.String(),
			Level:       acc.level / n,
			Temperature: acc.temperature / n,
			Purity:      acc.purity / n,
		})
	}
	return out
}
