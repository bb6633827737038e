// Package schema has models, enumerations and unit conversion for all parts of weightlog.
package schema

import "time"

// Sample is a single weight measurement. Values are always kilograms.
type Sample struct {
	ID    string    `json:"id"`    // Opaque unique identifier (UUID)
	Date  time.Time `json:"date"`  // When the measurement was taken
	Value float64   `json:"value"` // Weight in kilograms
}

// Window is the date range displayed for a period.
// Start and End are start-of-day instants and both days are included.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Bucket is a group of samples collapsed to one averaged point.
type Bucket struct {
	Key     time.Time `json:"key"`     // Day or month anchor of the bucket
	Average float64   `json:"average"` // Mean value in kilograms, rounded to one decimal
	Count   int       `json:"count"`   // Number of samples in the bucket
}

// ChartResult is everything needed to draw one chart screen.
type ChartResult struct {
	Period      Period      `json:"period"`
	Offset      int         `json:"offset"`
	Window      Window      `json:"window"`
	Label       string      `json:"label"`
	Buckets     []Bucket    `json:"buckets"`
	Ticks       []time.Time `json:"ticks"`
	SampleCount int         `json:"sample_count"` // Samples inside the window
	Unit        UnitSystem  `json:"unit"`
	MinDisplay  float64     `json:"min_display"` // Minimum in the display unit, 0 when empty
	MaxDisplay  float64     `json:"max_display"` // Maximum in the display unit, 0 when empty
}

// DisplayBuckets returns the buckets with averages converted to the result's unit.
func (r ChartResult) DisplayBuckets() []Bucket {
	out := make([]Bucket, len(r.Buckets))
	for i, b := range r.Buckets {
		out[i] = Bucket{Key: b.Key, Average: r.Unit.ToDisplay(b.Average), Count: b.Count}
	}
	return out
}

// StatsResult is the min/max summary of one window.
type StatsResult struct {
	Period      Period     `json:"period"`
	Label       string     `json:"label"`
	Window      Window     `json:"window"`
	Unit        UnitSystem `json:"unit"`
	SampleCount int        `json:"sample_count"`
	MinDisplay  float64    `json:"min_display"`
	MaxDisplay  float64    `json:"max_display"`
	Latest      *Sample    `json:"latest,omitempty"` // Most recent sample in the window
}
