package core

import (
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/huangsam/weightlog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKey(t *testing.T) {
	cal := utcCalendar()
	at := time.Date(2024, time.March, 17, 21, 45, 0, 0, time.UTC)

	assert.True(t, BucketKey(at, schema.WeekPeriod, cal).Equal(day(2024, time.March, 17)))
	assert.True(t, BucketKey(at, schema.MonthPeriod, cal).Equal(day(2024, time.March, 17)))
	assert.True(t, BucketKey(at, schema.YearPeriod, cal).Equal(day(2024, time.March, 1)))
	assert.True(t, BucketKey(at, schema.TotalPeriod, cal).Equal(day(2024, time.March, 1)))
}

func TestBucketKeyUsesCalendarZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	cal := Calendar{Location: tokyo, WeekStart: time.Monday}

	// 20:00 UTC on Mar 31 is already April 1 in Tokyo
	at := time.Date(2024, time.March, 31, 20, 0, 0, 0, time.UTC)
	key := BucketKey(at, schema.YearPeriod, cal)
	assert.Equal(t, time.April, key.Month())
	assert.Equal(t, 1, key.Day())
}

func TestRoundAverage(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{101, 101},
		{100.25, 100.3},
		{100.24, 100.2},
		{80.05, 80.1},
		{79.949, 79.9},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundAverage(tt.in), 1e-9, "RoundAverage(%v)", tt.in)
	}
}

func TestBinSamplesWeekScenario(t *testing.T) {
	cal := utcCalendar()
	day1 := day(2024, time.January, 1)
	day2 := day(2024, time.January, 2)
	samples := []schema.Sample{
		sampleOn("a", day1.Add(7*time.Hour), 100),
		sampleOn("b", day1.Add(21*time.Hour), 102),
		sampleOn("c", day2.Add(8*time.Hour), 101),
	}

	buckets := BinSamples(samples, schema.WeekPeriod, cal)
	require.Len(t, buckets, 2)
	assert.True(t, buckets[0].Key.Equal(day1))
	assert.InDelta(t, 101.0, buckets[0].Average, 1e-9)
	assert.Equal(t, 2, buckets[0].Count)
	assert.True(t, buckets[1].Key.Equal(day2))
	assert.InDelta(t, 101.0, buckets[1].Average, 1e-9)
	assert.Equal(t, 1, buckets[1].Count)
}

func TestBinSamplesMonthlyGroups(t *testing.T) {
	cal := utcCalendar()
	samples := []schema.Sample{
		sampleOn("a", day(2024, time.May, 30), 70.1),
		sampleOn("b", day(2024, time.April, 2), 72),
		sampleOn("c", day(2024, time.May, 1), 70.2),
		sampleOn("d", day(2024, time.April, 20), 71),
	}

	buckets := BinSamples(samples, schema.YearPeriod, cal)
	require.Len(t, buckets, 2)
	assert.Equal(t, time.April, buckets[0].Key.Month())
	assert.InDelta(t, 71.5, buckets[0].Average, 1e-9)
	assert.Equal(t, time.May, buckets[1].Key.Month())
	assert.InDelta(t, 70.2, buckets[1].Average, 1e-9) // 70.15 rounds up
}

func TestBinSamplesEmpty(t *testing.T) {
	buckets := BinSamples(nil, schema.TotalPeriod, utcCalendar())
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestBinSamplesProperties(t *testing.T) {
	cal := utcCalendar()
	rng := rand.New(rand.NewPCG(7, 11))
	base := day(2023, time.January, 1)

	for round := range 50 {
		n := 1 + rng.IntN(60)
		samples := make([]schema.Sample, n)
		for i := range samples {
			at := base.Add(time.Duration(rng.IntN(900*24)) * time.Hour)
			samples[i] = sampleOn("", at, 50+rng.Float64()*100)
		}

		for _, period := range schema.AllPeriods {
			buckets := BinSamples(samples, period, cal)
			assert.True(t, sort.SliceIsSorted(buckets, func(i, j int) bool {
				return buckets[i].Key.Before(buckets[j].Key)
			}), "round %d period %s not sorted", round, period)

			total := 0
			for _, b := range buckets {
				lo, hi := 1e9, -1e9
				for _, s := range samples {
					if BucketKey(s.Date, period, cal).Equal(b.Key) {
						lo = min(lo, s.Value)
						hi = max(hi, s.Value)
					}
				}
				// Rounding to one decimal can move the average by at most 0.05
				assert.GreaterOrEqual(t, b.Average, lo-0.05)
				assert.LessOrEqual(t, b.Average, hi+0.05)
				total += b.Count
			}
			assert.Equal(t, n, total)
		}
	}
}
