package schema

import (
	"fmt"
	"strings"
)

// Custom string types for type safety.
type (
	// Period represents the viewing granularity of a chart.
	Period string

	// UnitSystem represents the unit used to display weights.
	UnitSystem string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the sample store.
	DatabaseBackend string

	// ImageFormat represents the file format of a rendered chart.
	ImageFormat string
)

// All periods supported.
const (
	WeekPeriod  Period = "week" // default
	MonthPeriod Period = "month"
	YearPeriod  Period = "year"
	TotalPeriod Period = "total"
)

// All unit systems supported.
const (
	MetricUnits   UnitSystem = "metric" // default
	ImperialUnits UnitSystem = "imperial"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All image formats supported.
const (
	PNGImage ImageFormat = "png"
	SVGImage ImageFormat = "svg"
)

// Weight conversion and entry limits.
const (
	PoundsPerKilogram = 2.20462
	MinEntryKilograms = 5.0
	MaxEntryKilograms = 200.0
)

// Preference keys kept in the key-value store.
const (
	UnitSystemKey      = "preferredUnitSystem"
	LastWeightValueKey = "lastWeightValue"
	LastWeightDateKey  = "lastWeightDate"
)

// AllPeriods returns a list of all supported periods in display order.
var AllPeriods = []Period{WeekPeriod, MonthPeriod, YearPeriod, TotalPeriod}

// ValidPeriods lists all valid periods.
var ValidPeriods = map[Period]struct{}{
	WeekPeriod:  {},
	MonthPeriod: {},
	YearPeriod:  {},
	TotalPeriod: {},
}

// ValidUnitSystems lists all valid unit systems.
var ValidUnitSystems = map[UnitSystem]struct{}{
	MetricUnits:   {},
	ImperialUnits: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidImageFormats lists all valid chart image formats.
var ValidImageFormats = map[ImageFormat]struct{}{
	PNGImage: {},
	SVGImage: {},
}

// ParsePeriod converts user input like "Week" into a Period.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ValidPeriods[p]; !ok {
		return "", fmt.Errorf("invalid period '%s'. must be week, month, year, total", s)
	}
	return p, nil
}

// ParseUnitSystem converts user input like "lb" or "imperial" into a UnitSystem.
// The short labels kg and lb are accepted as aliases.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "kg", "kilograms":
		return MetricUnits, nil
	case "imperial", "lb", "lbs", "pounds":
		return ImperialUnits, nil
	default:
		return "", fmt.Errorf("invalid unit '%s'. must be metric (kg) or imperial (lb)", s)
	}
}

// Navigable reports whether windows of this period can be shifted.
func (p Period) Navigable() bool {
	return p != TotalPeriod
}

// Title returns the capitalized period name shown in headers.
func (p Period) Title() string {
	switch p {
	case WeekPeriod:
		return "Week"
	case MonthPeriod:
		return "Month"
	case YearPeriod:
		return "Year"
	case TotalPeriod:
		return "Total"
	default:
		return string(p)
	}
}
