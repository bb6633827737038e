package core

import (
	"sort"
	"time"

	"github.com/huangsam/weightlog/schema"
	"github.com/shopspring/decimal"
)

// averagePlaces is the number of decimals kept in bucket averages.
const averagePlaces = 1

// BucketKey returns the anchor a sample is grouped under for the period.
// Week and month charts group by day; year and total charts group by month.
func BucketKey(t time.Time, period schema.Period, cal Calendar) time.Time {
	switch period {
	case schema.YearPeriod, schema.TotalPeriod:
		return cal.StartOfMonth(t)
	default:
		return cal.StartOfDay(t)
	}
}

// RoundAverage rounds v to one decimal, half away from zero.
// Rounding happens on the shortest decimal form of v, so 100.25 becomes 100.3.
func RoundAverage(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(averagePlaces).Float64()
	return f
}

// BinSamples groups samples by bucket key and averages each group.
// The result is sorted ascending by key.
func BinSamples(samples []schema.Sample, period schema.Period, cal Calendar) []schema.Bucket {
	type acc struct {
		sum   decimal.Decimal
		count int
	}
	groups := make(map[int64]*acc)
	keys := make(map[int64]time.Time)

	for _, s := range samples {
		key := BucketKey(s.Date, period, cal)
		id := key.Unix()
		g, ok := groups[id]
		if !ok {
			g = &acc{}
			groups[id] = g
			keys[id] = key
		}
		g.sum = g.sum.Add(decimal.NewFromFloat(s.Value))
		g.count++
	}

	buckets := make([]schema.Bucket, 0, len(groups))
	for id, g := range groups {
		avg := g.sum.Div(decimal.NewFromInt(int64(g.count))).Round(averagePlaces)
		value, _ := avg.Float64()
		buckets = append(buckets, schema.Bucket{Key: keys[id], Average: value, Count: g.count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key.Before(buckets[j].Key)
	})
	return buckets
}
