package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, raw := range []string{"week", " Month ", "YEAR", "total"} {
		p, err := ParsePeriod(raw)
		require.NoError(t, err, raw)
		assert.Contains(t, AllPeriods, p)
	}

	_, err := ParsePeriod("decade")
	assert.ErrorContains(t, err, "invalid period")
}

func TestParseUnitSystem(t *testing.T) {
	tests := map[string]UnitSystem{
		"metric":   MetricUnits,
		"KG":       MetricUnits,
		"imperial": ImperialUnits,
		" lb ":     ImperialUnits,
		"pounds":   ImperialUnits,
	}
	for raw, want := range tests {
		got, err := ParseUnitSystem(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseUnitSystem("stone")
	assert.ErrorContains(t, err, "invalid unit")
}

func TestUnitConversion(t *testing.T) {
	assert.InDelta(t, 220.462, ImperialUnits.ToDisplay(100), 1e-9)
	assert.InDelta(t, 100, ImperialUnits.ToKilograms(220.462), 1e-9)
	assert.Equal(t, 80.5, MetricUnits.ToDisplay(80.5))
	assert.Equal(t, 80.5, UnitSystem("bogus").ToKilograms(80.5))

	assert.Equal(t, "lb", ImperialUnits.Label())
	assert.Equal(t, "Kilograms", MetricUnits.Title())
}

func TestPeriodNavigable(t *testing.T) {
	assert.True(t, WeekPeriod.Navigable())
	assert.True(t, YearPeriod.Navigable())
	assert.False(t, TotalPeriod.Navigable())
}

func TestDisplayBuckets(t *testing.T) {
	key := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	result := ChartResult{
		Unit:    ImperialUnits,
		Buckets: []Bucket{{Key: key, Average: 100, Count: 3}},
	}

	display := result.DisplayBuckets()
	require.Len(t, display, 1)
	assert.InDelta(t, 220.462, display[0].Average, 1e-9)
	assert.Equal(t, 3, display[0].Count)
	assert.Equal(t, 100.0, result.Buckets[0].Average, "canonical buckets stay in kilograms")
}
