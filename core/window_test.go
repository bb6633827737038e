package core

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/huangsam/weightlog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// utcCalendar is a Monday-first calendar pinned to UTC.
func utcCalendar() Calendar {
	return Calendar{Location: time.UTC, WeekStart: time.Monday}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleOn(id string, t time.Time, kg float64) schema.Sample {
	return schema.Sample{ID: id, Date: t, Value: kg}
}

func TestInitialWindow(t *testing.T) {
	cal := utcCalendar()
	now := day(2030, time.June, 1)
	// 2024-02-14 is a Wednesday
	samples := []schema.Sample{
		sampleOn("a", day(2023, time.November, 3).Add(8*time.Hour), 80),
		sampleOn("b", day(2024, time.February, 14).Add(19*time.Hour), 79),
	}

	tests := []struct {
		name   string
		period schema.Period
		start  time.Time
		end    time.Time
	}{
		{"week", schema.WeekPeriod, day(2024, time.February, 12), day(2024, time.February, 18)},
		{"month", schema.MonthPeriod, day(2024, time.February, 1), day(2024, time.February, 29)},
		{"year", schema.YearPeriod, day(2024, time.January, 1), day(2024, time.December, 31)},
		{"total", schema.TotalPeriod, day(2023, time.November, 3), day(2024, time.February, 14)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := InitialWindow(samples, tt.period, cal, now)
			assert.True(t, w.Start.Equal(tt.start), "start %s", w.Start)
			assert.True(t, w.End.Equal(tt.end), "end %s", w.End)
			assert.False(t, w.Start.After(w.End))
		})
	}
}

func TestInitialWindowWithoutSamples(t *testing.T) {
	cal := utcCalendar()
	now := time.Date(2025, time.November, 5, 15, 30, 0, 0, time.UTC) // Wednesday

	w := InitialWindow(nil, schema.WeekPeriod, cal, now)
	assert.True(t, w.Start.Equal(day(2025, time.November, 3)))

	w = InitialWindow(nil, schema.TotalPeriod, cal, now)
	assert.True(t, w.Start.Equal(day(2025, time.November, 5)))
	assert.True(t, w.End.Equal(w.Start))
}

func TestInitialWindowSundayFirst(t *testing.T) {
	cal := Calendar{Location: time.UTC, WeekStart: time.Sunday}
	samples := []schema.Sample{sampleOn("a", day(2024, time.February, 14), 79)}

	w := InitialWindow(samples, schema.WeekPeriod, cal, time.Time{})
	assert.True(t, w.Start.Equal(day(2024, time.February, 11)))
	assert.True(t, w.End.Equal(day(2024, time.February, 17)))
}

func TestNavigate(t *testing.T) {
	cal := utcCalendar()

	t.Run("week forward", func(t *testing.T) {
		w := schema.Window{Start: day(2024, time.January, 1), End: day(2024, time.January, 7)}
		next := Navigate(w, schema.WeekPeriod, 1, cal)
		assert.True(t, next.Start.Equal(day(2024, time.January, 8)))
		assert.True(t, next.End.Equal(day(2024, time.January, 14)))
	})

	t.Run("week back across year", func(t *testing.T) {
		w := schema.Window{Start: day(2024, time.January, 1), End: day(2024, time.January, 7)}
		prev := Navigate(w, schema.WeekPeriod, -1, cal)
		assert.True(t, prev.Start.Equal(day(2023, time.December, 25)))
		assert.True(t, prev.End.Equal(day(2023, time.December, 31)))
	})

	t.Run("month lengths", func(t *testing.T) {
		w := schema.Window{Start: day(2024, time.January, 1), End: day(2024, time.January, 31)}
		next := Navigate(w, schema.MonthPeriod, 1, cal)
		assert.True(t, next.Start.Equal(day(2024, time.February, 1)))
		assert.True(t, next.End.Equal(day(2024, time.February, 29)))

		back := Navigate(w, schema.MonthPeriod, -2, cal)
		assert.True(t, back.Start.Equal(day(2023, time.November, 1)))
		assert.True(t, back.End.Equal(day(2023, time.November, 30)))
	})

	t.Run("year", func(t *testing.T) {
		w := schema.Window{Start: day(2024, time.January, 1), End: day(2024, time.December, 31)}
		prev := Navigate(w, schema.YearPeriod, -1, cal)
		assert.True(t, prev.Start.Equal(day(2023, time.January, 1)))
		assert.True(t, prev.End.Equal(day(2023, time.December, 31)))
	})

	t.Run("total is fixed", func(t *testing.T) {
		w := schema.Window{Start: day(2020, time.May, 3), End: day(2024, time.January, 7)}
		assert.Equal(t, w, Navigate(w, schema.TotalPeriod, 5, cal))
	})
}

func TestNavigateAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cal := Calendar{Location: loc, WeekStart: time.Monday}

	// US clocks spring forward on 2024-03-10
	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, loc)
	w := windowFrom(start, schema.WeekPeriod, cal)
	next := Navigate(w, schema.WeekPeriod, 1, cal)

	assert.Equal(t, 0, next.Start.Hour())
	assert.Equal(t, 11, next.Start.Day())
	assert.Equal(t, 17, next.End.Day())
}

func TestNavigateAcrossMidnightDST(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	cal := Calendar{Location: loc, WeekStart: time.Sunday}

	// Chile springs forward at local midnight on Sunday 2024-09-08
	t.Run("start of day", func(t *testing.T) {
		d := cal.StartOfDay(time.Date(2024, time.September, 8, 10, 0, 0, 0, loc))
		assert.Equal(t, 8, d.Day())
		assert.Equal(t, 1, d.Hour())
		assert.Equal(t, time.Sunday, d.Weekday())
	})

	t.Run("initial week", func(t *testing.T) {
		samples := []schema.Sample{sampleOn("a", time.Date(2024, time.September, 14, 9, 0, 0, 0, loc), 80)}
		opts := Options{Calendar: cal, Unit: schema.MetricUnits, Now: day(2025, time.January, 1)}

		result := Compute(samples, schema.WeekPeriod, 0, opts)
		assert.Equal(t, 8, result.Window.Start.Day())
		assert.Equal(t, 14, result.Window.End.Day())
		assert.Equal(t, "8 Sep - 14 Sep", result.Label)
		assert.Equal(t, 1, result.SampleCount)
	})

	t.Run("navigate over the gap", func(t *testing.T) {
		w := windowFrom(time.Date(2024, time.September, 1, 0, 0, 0, 0, loc), schema.WeekPeriod, cal)
		next := Navigate(w, schema.WeekPeriod, 1, cal)
		assert.Equal(t, 8, next.Start.Day())
		assert.Equal(t, 14, next.End.Day())

		back := Navigate(next, schema.WeekPeriod, -1, cal)
		assert.True(t, back.Start.Equal(w.Start))
		assert.True(t, back.End.Equal(w.End))
	})

	t.Run("day bucket", func(t *testing.T) {
		key := BucketKey(time.Date(2024, time.September, 8, 10, 0, 0, 0, loc), schema.MonthPeriod, cal)
		assert.Equal(t, 8, key.Day())
		assert.Equal(t, time.September, key.Month())
	})
}

func TestWindowProperties(t *testing.T) {
	var calendars []Calendar
	for _, name := range []string{"UTC", "Europe/Berlin", "America/Santiago"} {
		loc, err := time.LoadLocation(name)
		require.NoError(t, err)
		calendars = append(calendars, Calendar{Location: loc, WeekStart: time.Monday})
		calendars = append(calendars, Calendar{Location: loc, WeekStart: time.Sunday})
	}

	rng := rand.New(rand.NewPCG(3, 5))
	base := day(2023, time.January, 1)

	for round := range 40 {
		n := 1 + rng.IntN(40)
		samples := make([]schema.Sample, n)
		latest := base
		for i := range samples {
			at := base.Add(time.Duration(rng.IntN(900*24*60)) * time.Minute)
			samples[i] = sampleOn("", at, 50+rng.Float64()*100)
			if at.After(latest) {
				latest = at
			}
		}

		for _, cal := range calendars {
			opts := Options{Calendar: cal, Unit: schema.MetricUnits, Now: base}
			for _, period := range schema.AllPeriods {
				for offset := -6; offset <= 6; offset++ {
					result := Compute(samples, period, offset, opts)
					w := result.Window
					msg := []any{"round %d zone %s week start %s period %s offset %d", round, cal.Location, cal.WeekStart, period, offset}

					assert.False(t, w.Start.After(w.End), msg...)
					assert.True(t, w.Start.Equal(cal.StartOfDay(w.Start)), msg...)
					assert.True(t, w.End.Equal(cal.StartOfDay(w.End)), msg...)
					assert.Len(t, FilterSamples(samples, w, cal), result.SampleCount, msg...)

					if offset == 0 || !period.Navigable() {
						assert.True(t, Contains(w, latest, cal), msg...)
					}
					if period == schema.WeekPeriod {
						assert.Equal(t, cal.WeekStart, w.Start.In(cal.loc()).Weekday(), msg...)
						assert.True(t, w.End.Equal(cal.AddDays(w.Start, 6)), msg...)
					}
					if period.Navigable() {
						back := Navigate(Navigate(w, period, 3, cal), period, -3, cal)
						assert.True(t, back.Start.Equal(w.Start), msg...)
						assert.True(t, back.End.Equal(w.End), msg...)
					}
				}
			}
		}
	}
}

func TestFilterSamples(t *testing.T) {
	cal := utcCalendar()
	w := schema.Window{Start: day(2024, time.January, 1), End: day(2024, time.January, 7)}
	samples := []schema.Sample{
		sampleOn("before", day(2023, time.December, 31).Add(23*time.Hour), 80),
		sampleOn("first", day(2024, time.January, 1), 81),
		sampleOn("last", day(2024, time.January, 7).Add(23*time.Hour+59*time.Minute), 82),
		sampleOn("after", day(2024, time.January, 8), 83),
	}

	filtered := FilterSamples(samples, w, cal)
	require.Len(t, filtered, 2)
	assert.Equal(t, "first", filtered[0].ID)
	assert.Equal(t, "last", filtered[1].ID)

	assert.Equal(t, filtered, FilterSamples(filtered, w, cal), "filtering twice changes nothing")
}

func TestWindowLabel(t *testing.T) {
	cal := utcCalendar()
	tests := []struct {
		period schema.Period
		window schema.Window
		want   string
	}{
		{schema.WeekPeriod, schema.Window{Start: day(2024, time.January, 29), End: day(2024, time.February, 4)}, "29 Jan - 4 Feb"},
		{schema.MonthPeriod, schema.Window{Start: day(2024, time.February, 1), End: day(2024, time.February, 29)}, "February 2024"},
		{schema.YearPeriod, schema.Window{Start: day(2024, time.January, 1), End: day(2024, time.December, 31)}, "2024"},
		{schema.TotalPeriod, schema.Window{Start: day(2020, time.January, 1), End: day(2024, time.December, 31)}, "All time"},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			assert.Equal(t, tt.want, WindowLabel(tt.window, tt.period, cal))
		})
	}
}

func TestSortedCopyLeavesInput(t *testing.T) {
	samples := []schema.Sample{
		sampleOn("b", day(2024, time.January, 2), 80),
		sampleOn("a", day(2024, time.January, 1), 81),
	}
	sorted := sortedCopy(samples)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", samples[0].ID)
}
