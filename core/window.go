package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/huangsam/weightlog/schema"
)

// sortedCopy returns the samples ordered by date without touching the input.
func sortedCopy(samples []schema.Sample) []schema.Sample {
	out := make([]schema.Sample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// InitialWindow picks the window shown when a period is first selected.
// Samples must be sorted ascending; now anchors the window when there are none.
func InitialWindow(sorted []schema.Sample, period schema.Period, cal Calendar, now time.Time) schema.Window {
	anchor := now
	if len(sorted) > 0 {
		anchor = sorted[len(sorted)-1].Date
	}

	switch period {
	case schema.MonthPeriod:
		return windowFrom(cal.StartOfMonth(anchor), period, cal)
	case schema.YearPeriod:
		return windowFrom(cal.StartOfYear(anchor), period, cal)
	case schema.TotalPeriod:
		if len(sorted) == 0 {
			day := cal.StartOfDay(now)
			return schema.Window{Start: day, End: day}
		}
		return schema.Window{
			Start: cal.StartOfDay(sorted[0].Date),
			End:   cal.StartOfDay(sorted[len(sorted)-1].Date),
		}
	default: // WeekPeriod
		return windowFrom(cal.StartOfWeek(anchor), period, cal)
	}
}

// windowFrom derives the window end from an aligned start.
func windowFrom(start time.Time, period schema.Period, cal Calendar) schema.Window {
	switch period {
	case schema.MonthPeriod:
		return schema.Window{Start: start, End: cal.EndOfMonth(start)}
	case schema.YearPeriod:
		return schema.Window{Start: start, End: cal.AddDays(cal.AddYears(start, 1), -1)}
	default:
		return schema.Window{Start: start, End: cal.AddDays(start, 6)}
	}
}

// Navigate shifts w by delta whole periods. Total windows never move.
func Navigate(w schema.Window, period schema.Period, delta int, cal Calendar) schema.Window {
	if delta == 0 || !period.Navigable() {
		return w
	}

	var start time.Time
	switch period {
	case schema.MonthPeriod:
		start = cal.AddMonths(w.Start, delta)
	case schema.YearPeriod:
		start = cal.AddYears(w.Start, delta)
	default:
		start = cal.AddDays(w.Start, 7*delta)
	}
	return windowFrom(start, period, cal)
}

// Contains reports whether t falls on a day inside w.
func Contains(w schema.Window, t time.Time, cal Calendar) bool {
	day := cal.StartOfDay(t)
	return !day.Before(w.Start) && !day.After(w.End)
}

// FilterSamples keeps the samples whose day lies in w, preserving order.
func FilterSamples(samples []schema.Sample, w schema.Window, cal Calendar) []schema.Sample {
	out := make([]schema.Sample, 0, len(samples))
	for _, s := range samples {
		if Contains(w, s.Date, cal) {
			out = append(out, s)
		}
	}
	return out
}

// WindowLabel returns the header text for a window.
func WindowLabel(w schema.Window, period schema.Period, cal Calendar) string {
	start := w.Start.In(cal.loc())
	switch period {
	case schema.WeekPeriod:
		return fmt.Sprintf("%s - %s", start.Format("2 Jan"), w.End.In(cal.loc()).Format("2 Jan"))
	case schema.MonthPeriod:
		return start.Format("January 2006")
	case schema.YearPeriod:
		return start.Format("2006")
	default:
		return "All time"
	}
}
