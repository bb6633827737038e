package contract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/weightlog/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 1
	DefaultSampleLimit = 50
	MaxSampleLimit     = 10000
	DefaultWeekStart   = "monday"
	DefaultTimezone    = "Local"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DateFormat is the representation of calendar days in output.
var DateFormat = time.DateOnly

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	Period schema.Period
	Offset int
	Unit   schema.UnitSystem // Empty means use the stored preference

	WeekStart time.Weekday
	Location  *time.Location

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	Limit      int

	ImagePath   string
	ImageFormat schema.ImageFormat

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	EntryDate time.Time // Zero means "now" when adding a sample
	Replace   bool
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Unit           string `mapstructure:"unit"`
	WeekStart      string `mapstructure:"week-start"`
	Timezone       string `mapstructure:"timezone"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from chartCmd / statsCmd flags ---
	Period string `mapstructure:"period"`
	Offset int    `mapstructure:"offset"`
	Image  string `mapstructure:"image"`

	// --- Fields from samplesCmd flags ---
	Limit int `mapstructure:"limit"`

	// --- Fields from addCmd / importCmd flags ---
	Date    string `mapstructure:"date"`
	Replace bool   `mapstructure:"replace"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CalendarParts returns the location and week start, defaulting to local time.
func (c *Config) CalendarParts() (*time.Location, time.Weekday) {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return loc, c.WeekStart
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCalendar(cfg, input); err != nil {
		return err
	}
	if err := processChartInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processEntryDate(cfg, input, now); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ProcessBackend validates a raw backend name and connection string.
func ProcessBackend(rawBackend, connStr string) (schema.DatabaseBackend, error) {
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(rawBackend)))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", rawBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", err
	}
	return backend, nil
}

// validateBackendConfigs validates the store backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend, err := ProcessBackend(input.StoreBackend, input.StoreDBConnect)
	if err != nil {
		return err
	}
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = input.StoreDBConnect
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Replace = input.Replace

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	if input.Limit <= 0 || input.Limit > MaxSampleLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxSampleLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	cfg.Unit = ""
	if strings.TrimSpace(input.Unit) != "" {
		unit, err := schema.ParseUnitSystem(input.Unit)
		if err != nil {
			return err
		}
		cfg.Unit = unit
	}
	return nil
}

// processCalendar resolves the week start and time zone.
func processCalendar(cfg *Config, input *ConfigRawInput) error {
	weekStart := input.WeekStart
	if weekStart == "" {
		weekStart = DefaultWeekStart
	}
	day, err := ParseWeekday(weekStart)
	if err != nil {
		return fmt.Errorf("invalid --week-start value: %w", err)
	}
	cfg.WeekStart = day

	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("invalid --timezone value '%s': %w", tz, err)
	}
	cfg.Location = loc
	return nil
}

// processChartInputs handles the period, offset and chart image options.
func processChartInputs(cfg *Config, input *ConfigRawInput) error {
	raw := input.Period
	if raw == "" {
		raw = string(schema.WeekPeriod)
	}
	period, err := schema.ParsePeriod(raw)
	if err != nil {
		return err
	}
	cfg.Period = period
	cfg.Offset = input.Offset
	if !period.Navigable() {
		cfg.Offset = 0
	}

	cfg.ImagePath = strings.TrimSpace(input.Image)
	cfg.ImageFormat = ""
	if cfg.ImagePath != "" {
		format, err := ImageFormatFromPath(cfg.ImagePath)
		if err != nil {
			return err
		}
		cfg.ImageFormat = format
	}
	return nil
}

// ImageFormatFromPath picks the chart image format from a file extension.
func ImageFormatFromPath(path string) (schema.ImageFormat, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	format := schema.ImageFormat(ext)
	if _, ok := schema.ValidImageFormats[format]; !ok {
		return "", fmt.Errorf("unsupported image extension '%s'. must be .png or .svg", filepath.Ext(path))
	}
	return format, nil
}

// processEntryDate parses the optional date of a new sample.
func processEntryDate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	cfg.EntryDate = time.Time{}
	if strings.TrimSpace(input.Date) == "" {
		return nil
	}
	t, err := ParseEntryDate(input.Date, now, cfg.Location)
	if err != nil {
		return err
	}
	if t.After(now) {
		return fmt.Errorf("date %s is in the future", t.Format(DateTimeFormat))
	}
	cfg.EntryDate = t
	return nil
}

// RevalidateChart applies per-request chart options on top of an already validated config.
// Empty values keep what the config already holds.
func RevalidateChart(cfg *Config, period string, offset int, unit string) error {
	if period != "" {
		input := &ConfigRawInput{Period: period, Offset: offset}
		if err := processChartInputs(cfg, input); err != nil {
			return err
		}
	} else {
		cfg.Offset = offset
		if !cfg.Period.Navigable() {
			cfg.Offset = 0
		}
	}
	if unit != "" {
		u, err := schema.ParseUnitSystem(unit)
		if err != nil {
			return err
		}
		cfg.Unit = u
	}
	return nil
}

// RevalidateEntryDate parses the date of a sample added outside the CLI flags.
func RevalidateEntryDate(cfg *Config, date string, now time.Time) error {
	return processEntryDate(cfg, &ConfigRawInput{Date: date}, now)
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
