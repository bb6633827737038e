package core

import (
	"time"

	"github.com/huangsam/weightlog/schema"
)

// Tick caps keep the time axis readable.
const (
	maxMonthTicks       = 10
	maxYearTicks        = 13
	maxTotalYearTicks   = 20
	maxTotalMonthTicks  = 24
	yearlyTickThreshold = 18 * 30 * 24 * time.Hour
)

// AxisTicks returns the dates marked on the horizontal axis for a window.
// When empty is true there is no data and only the window start is marked.
func AxisTicks(w schema.Window, period schema.Period, cal Calendar, empty bool) []time.Time {
	switch period {
	case schema.WeekPeriod:
		ticks := make([]time.Time, 0, 7)
		for i := range 7 {
			ticks = append(ticks, cal.AddDays(w.Start, i))
		}
		return ticks

	case schema.MonthPeriod:
		ticks := stepTicks(cal.StartOfWeek(w.Start), w.End, maxMonthTicks, func(t time.Time) time.Time {
			return cal.AddDays(t, 7)
		})
		return withEnd(ticks, w.End)

	case schema.YearPeriod:
		ticks := stepTicks(cal.StartOfMonth(w.Start), w.End, maxYearTicks, func(t time.Time) time.Time {
			return cal.AddMonths(t, 1)
		})
		return withEnd(ticks, w.End)

	default: // TotalPeriod
		if empty {
			return []time.Time{w.Start}
		}
		if w.End.Sub(w.Start) > yearlyTickThreshold {
			return withEnd(yearTicks(w, cal), w.End)
		}
		ticks := stepTicks(cal.StartOfMonth(w.Start), w.End, maxTotalMonthTicks, func(t time.Time) time.Time {
			return cal.AddMonths(t, 1)
		})
		return withEnd(ticks, w.End)
	}
}

// stepTicks walks from cursor to end (inclusive), stopping after limit ticks.
func stepTicks(cursor, end time.Time, limit int, next func(time.Time) time.Time) []time.Time {
	var ticks []time.Time
	for !cursor.After(end) && len(ticks) < limit {
		ticks = append(ticks, cursor)
		cursor = next(cursor)
	}
	return ticks
}

// yearTicks marks January 1 of every year the window touches.
func yearTicks(w schema.Window, cal Calendar) []time.Time {
	var ticks []time.Time
	last := w.End.In(cal.loc()).Year()
	for y := cal.StartOfYear(w.Start); y.Year() <= last && len(ticks) < maxTotalYearTicks; y = cal.AddYears(y, 1) {
		ticks = append(ticks, y)
	}
	return ticks
}

// withEnd appends end unless it is already the final tick.
func withEnd(ticks []time.Time, end time.Time) []time.Time {
	if len(ticks) > 0 && ticks[len(ticks)-1].Equal(end) {
		return ticks
	}
	return append(ticks, end)
}
