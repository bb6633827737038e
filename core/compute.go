package core

import (
	"time"

	"github.com/huangsam/weightlog/schema"
)

// Options holds everything the calculator needs besides the samples.
// Now is used only to anchor windows when there are no samples.
type Options struct {
	Calendar Calendar
	Unit     schema.UnitSystem
	Now      time.Time
}

// Compute builds the chart for a period, offset whole periods away from the
// window of the most recent sample. It never fails and never mutates samples.
func Compute(samples []schema.Sample, period schema.Period, offset int, opts Options) schema.ChartResult {
	cal := opts.Calendar
	sorted := sortedCopy(samples)

	window := Navigate(InitialWindow(sorted, period, cal, opts.Now), period, offset, cal)
	filtered := FilterSamples(sorted, window, cal)
	minValue, maxValue := MinMax(filtered, opts.Unit)

	if !period.Navigable() {
		offset = 0
	}
	return schema.ChartResult{
		Period:      period,
		Offset:      offset,
		Window:      window,
		Label:       WindowLabel(window, period, cal),
		Buckets:     BinSamples(filtered, period, cal),
		Ticks:       AxisTicks(window, period, cal, len(sorted) == 0),
		SampleCount: len(filtered),
		Unit:        opts.Unit,
		MinDisplay:  minValue,
		MaxDisplay:  maxValue,
	}
}

// MinMax returns the extremes of the samples in the display unit.
// Both are 0 when there are no samples.
func MinMax(samples []schema.Sample, unit schema.UnitSystem) (float64, float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	lo, hi := samples[0].Value, samples[0].Value
	for _, s := range samples[1:] {
		lo = min(lo, s.Value)
		hi = max(hi, s.Value)
	}
	return unit.ToDisplay(lo), unit.ToDisplay(hi)
}

// Stats summarizes the window that Compute would show.
func Stats(samples []schema.Sample, period schema.Period, offset int, opts Options) schema.StatsResult {
	cal := opts.Calendar
	sorted := sortedCopy(samples)
	window := Navigate(InitialWindow(sorted, period, cal, opts.Now), period, offset, cal)
	filtered := FilterSamples(sorted, window, cal)
	minValue, maxValue := MinMax(filtered, opts.Unit)

	result := schema.StatsResult{
		Period:      period,
		Label:       WindowLabel(window, period, cal),
		Window:      window,
		Unit:        opts.Unit,
		SampleCount: len(filtered),
		MinDisplay:  minValue,
		MaxDisplay:  maxValue,
	}
	if n := len(filtered); n > 0 {
		latest := filtered[n-1]
		result.Latest = &latest
	}
	return result
}
