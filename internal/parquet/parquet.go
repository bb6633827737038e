// Package parquet exports and imports weight samples as Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/weightlog/schema"
	"github.com/parquet-go/parquet-go"
)

// WeightSample is one row of a sample export.
// It mirrors the weight_samples database table.
type WeightSample struct {
	// SampleID is the unique identifier of the sample
	SampleID string `parquet:"sample_id,snappy"`

	// TakenAt is when the measurement was taken (stored as TIMESTAMP with nanosecond precision)
	TakenAt time.Time `parquet:"taken_at,snappy"`

	// ValueKg is the weight in kilograms
	ValueKg float64 `parquet:"value_kg,snappy"`
}

// FromSamples converts domain samples into Parquet rows.
func FromSamples(samples []schema.Sample) []WeightSample {
	rows := make([]WeightSample, len(samples))
	for i, s := range samples {
		rows[i] = WeightSample{SampleID: s.ID, TakenAt: s.Date.UTC(), ValueKg: s.Value}
	}
	return rows
}

// ToSamples converts Parquet rows back into domain samples.
func ToSamples(rows []WeightSample) []schema.Sample {
	samples := make([]schema.Sample, len(rows))
	for i, r := range rows {
		samples[i] = schema.Sample{ID: r.SampleID, Date: r.TakenAt, Value: r.ValueKg}
	}
	return samples
}

// WriteSamplesParquet writes samples to a Parquet file at outputPath.
func WriteSamplesParquet(samples []schema.Sample, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the WeightSample struct tags
	writer := parquet.NewGenericWriter[WeightSample](file)
	if _, err := writer.Write(FromSamples(samples)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// ReadSamplesParquet reads every sample from the Parquet file at inputPath.
func ReadSamplesParquet(inputPath string) ([]schema.Sample, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[WeightSample](file)
	defer func() { _ = reader.Close() }()

	rows := make([]WeightSample, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}
	return ToSamples(rows[:n]), nil
}
