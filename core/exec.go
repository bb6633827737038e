package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/internal/outwriter"
	"github.com/huangsam/weightlog/internal/parquet"
	"github.com/huangsam/weightlog/internal/store"
	"github.com/huangsam/weightlog/schema"
)

// CalendarFor builds the calendar described by the config.
func CalendarFor(cfg *contract.Config) Calendar {
	loc, weekStart := cfg.CalendarParts()
	return Calendar{Location: loc, WeekStart: weekStart}
}

// ResolveUnit returns the unit override from cfg, or the stored preference.
// Metric is used when neither is set.
func ResolveUnit(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) schema.UnitSystem {
	if cfg.Unit != "" {
		return cfg.Unit
	}
	prefs := mgr.GetPrefStore()
	if prefs == nil {
		return schema.MetricUnits
	}
	raw, err := prefs.Get(ctx, schema.UnitSystemKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			contract.LogWarnContext(ctx, "Cannot read unit preference", err)
		}
		return schema.MetricUnits
	}
	unit, err := schema.ParseUnitSystem(raw)
	if err != nil {
		contract.LogWarnContext(ctx, "Ignoring stored unit preference", err)
		return schema.MetricUnits
	}
	return unit
}

// SetUnit stores the preferred unit system.
func SetUnit(ctx context.Context, mgr contract.StoreManager, unit schema.UnitSystem) error {
	if _, ok := schema.ValidUnitSystems[unit]; !ok {
		return fmt.Errorf("invalid unit '%s'", unit)
	}
	return mgr.GetPrefStore().Set(ctx, schema.UnitSystemKey, string(unit))
}

// loadSamples reads every sample from the store.
func loadSamples(ctx context.Context, mgr contract.StoreManager) ([]schema.Sample, error) {
	samples := mgr.GetSampleStore()
	if samples == nil {
		return nil, errors.New("sample store is not initialized")
	}
	list, err := samples.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}
	return list, nil
}

// optionsFor collects the calculator options for a command.
func optionsFor(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, now time.Time) Options {
	return Options{
		Calendar: CalendarFor(cfg),
		Unit:     ResolveUnit(ctx, cfg, mgr),
		Now:      now,
	}
}

// LoadChart loads samples and computes the chart for cfg.Period and cfg.Offset.
func LoadChart(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, now time.Time) (schema.ChartResult, error) {
	samples, err := loadSamples(ctx, mgr)
	if err != nil {
		return schema.ChartResult{}, err
	}
	return Compute(samples, cfg.Period, cfg.Offset, optionsFor(ctx, cfg, mgr, now)), nil
}

// LoadStats loads samples and summarizes the window for cfg.Period and cfg.Offset.
func LoadStats(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, now time.Time) (schema.StatsResult, error) {
	samples, err := loadSamples(ctx, mgr)
	if err != nil {
		return schema.StatsResult{}, err
	}
	return Stats(samples, cfg.Period, cfg.Offset, optionsFor(ctx, cfg, mgr, now)), nil
}

// RecentSamples returns up to limit samples, newest first.
func RecentSamples(ctx context.Context, mgr contract.StoreManager, limit int) ([]schema.Sample, error) {
	samples, err := loadSamples(ctx, mgr)
	if err != nil {
		return nil, err
	}
	samples = sortedCopy(samples)
	slices.Reverse(samples)
	if limit > 0 && len(samples) > limit {
		samples = samples[:limit]
	}
	return samples, nil
}

// AddSample validates raw in the resolved unit and stores a new sample.
// An empty raw value repeats the last recorded weight.
func AddSample(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, raw string, now time.Time) (schema.Sample, error) {
	unit := ResolveUnit(ctx, cfg, mgr)
	prefs := mgr.GetPrefStore()

	var kg float64
	var err error
	if strings.TrimSpace(raw) == "" {
		kg, err = lastWeight(ctx, prefs)
	} else {
		kg, err = contract.ParseWeightInput(raw, unit)
	}
	if err != nil {
		return schema.Sample{}, err
	}

	date := cfg.EntryDate
	if date.IsZero() {
		date = now
	}
	sample := schema.Sample{ID: uuid.NewString(), Date: date, Value: kg}
	if err := mgr.GetSampleStore().Add(ctx, sample); err != nil {
		return schema.Sample{}, err
	}

	if prefs != nil {
		if err := prefs.Set(ctx, schema.LastWeightValueKey, strconv.FormatFloat(kg, 'f', -1, 64)); err != nil {
			contract.LogWarnContext(ctx, "Cannot remember last weight", err)
		}
		if err := prefs.Set(ctx, schema.LastWeightDateKey, date.Format(time.RFC3339)); err != nil {
			contract.LogWarnContext(ctx, "Cannot remember last weight date", err)
		}
	}
	return sample, nil
}

// lastWeight reads the previously recorded weight in kilograms.
func lastWeight(ctx context.Context, prefs contract.PrefStore) (float64, error) {
	if prefs == nil {
		return 0, contract.ErrEmptyWeight
	}
	raw, err := prefs.Get(ctx, schema.LastWeightValueKey)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w and no previous weight is recorded", contract.ErrEmptyWeight)
	}
	if err != nil {
		return 0, err
	}
	kg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("stored last weight %q is invalid: %w", raw, err)
	}
	return contract.ValidateKilograms(kg)
}

// ExecuteAdd records one sample and prints a confirmation.
func ExecuteAdd(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, raw string) error {
	sample, err := AddSample(ctx, cfg, mgr, raw, time.Now())
	if err != nil {
		return err
	}
	unit := ResolveUnit(ctx, cfg, mgr)
	loc, _ := cfg.CalendarParts()
	fmt.Printf("✅ Recorded %.1f %s on %s\n",
		unit.ToDisplay(sample.Value), unit.Label(), sample.Date.In(loc).Format("Mon 2 Jan 2006 15:04"))
	return nil
}

// ReadSampleFile decodes samples from a legacy JSON or Parquet file.
func ReadSampleFile(path string) ([]schema.Sample, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return parquet.ReadSamplesParquet(path)
	case ".json":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()
		return store.DecodeLegacySamples(file)
	default:
		return nil, fmt.Errorf("unsupported import file %s. must be .json or .parquet", path)
	}
}

// ImportSamples merges samples into the store, or replaces everything when replace is set.
// When merging, samples whose id already exists are skipped. It returns the number stored.
func ImportSamples(ctx context.Context, mgr contract.StoreManager, samples []schema.Sample, replace bool) (int, error) {
	for _, s := range samples {
		if _, err := contract.ValidateKilograms(s.Value); err != nil {
			contract.LogWarnContext(ctx, fmt.Sprintf("Importing sample %s outside the entry range", s.ID), err)
		}
	}

	sampleStore := mgr.GetSampleStore()
	if replace {
		if err := sampleStore.ReplaceAll(ctx, samples); err != nil {
			return 0, fmt.Errorf("failed to replace samples: %w", err)
		}
		return len(samples), nil
	}

	existing, err := sampleStore.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load samples: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		known[s.ID] = struct{}{}
	}

	added := 0
	for _, s := range samples {
		if _, ok := known[s.ID]; ok {
			continue
		}
		if err := sampleStore.Add(ctx, s); err != nil {
			return added, err
		}
		known[s.ID] = struct{}{}
		added++
	}
	return added, nil
}

// ExecuteImport reads a sample file and stores its contents.
func ExecuteImport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, path string) error {
	samples, err := ReadSampleFile(path)
	if err != nil {
		return err
	}
	added, err := ImportSamples(ctx, mgr, samples, cfg.Replace)
	if err != nil {
		return err
	}
	if cfg.Replace {
		fmt.Printf("📥 Replaced all samples with %d from %s\n", added, path)
	} else {
		fmt.Printf("📥 Imported %d of %d samples from %s\n", added, len(samples), path)
	}
	return nil
}

// ExecuteExport writes every sample to cfg.OutputFile. The format follows the file extension.
func ExecuteExport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	samples, err := loadSamples(ctx, mgr)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return errors.New("no samples found to export")
	}

	switch strings.ToLower(filepath.Ext(cfg.OutputFile)) {
	case ".parquet":
		if err := parquet.WriteSamplesParquet(samples, cfg.OutputFile); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
	case ".json":
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return err
		}
		defer func() { _ = file.Close() }()
		if err := store.EncodeLegacySamples(file, samples); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
	case ".csv":
		exportCfg := cfg.Clone()
		exportCfg.Output = schema.CSVOut
		if err := outwriter.PrintSamples(samples, schema.MetricUnits, exportCfg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export file %s. must be .json, .csv or .parquet", cfg.OutputFile)
	}

	fmt.Printf("📤 Exported %d samples to %s\n", len(samples), cfg.OutputFile)
	return nil
}

// ExecuteUnitShow prints the unit in effect and where it comes from.
func ExecuteUnitShow(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	unit := ResolveUnit(ctx, cfg, mgr)
	source := "stored preference"
	if cfg.Unit != "" {
		source = "override"
	}
	fmt.Printf("⚖️  %s (%s), %s\n", unit.Title(), unit.Label(), source)
	return nil
}

// ExecuteUnitSet stores a new preferred unit.
func ExecuteUnitSet(ctx context.Context, mgr contract.StoreManager, raw string) error {
	unit, err := schema.ParseUnitSystem(raw)
	if err != nil {
		return err
	}
	if err := SetUnit(ctx, mgr, unit); err != nil {
		return err
	}
	fmt.Printf("⚖️  Preferred unit set to %s (%s)\n", unit.Title(), unit.Label())
	return nil
}
