package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/internal/parquet"
	"github.com/huangsam/weightlog/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSamples outputs raw samples, dispatching based on the output format configured.
// Weights are shown in unit except for JSON and Parquet, which keep kilograms.
func PrintSamples(samples []schema.Sample, unit schema.UnitSystem, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, samples)
		}, "Wrote JSON samples"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForSamples(w, samples, unit, cfg, fmtFloat)
		}, "Wrote CSV samples"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("parquet output requires --output-file")
		}
		if err := parquet.WriteSamplesParquet(samples, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSamplesTable(w, samples, unit, cfg, fmtFloat)
		}, "Wrote samples")
	}
	return nil
}

// writeCSVResultsForSamples writes one row per sample.
func writeCSVResultsForSamples(w io.Writer, samples []schema.Sample, unit schema.UnitSystem, cfg *contract.Config, fmtFloat func(float64) string) error {
	loc := location(cfg)
	header := []string{"id", "date", "value", "unit"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range samples {
			row := []string{
				s.ID,
				s.Date.In(loc).Format(contract.DateTimeFormat),
				fmtFloat(unit.ToDisplay(s.Value)),
				unit.Label(),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSamplesTable prints the samples with their dates in the display location.
func writeSamplesTable(w io.Writer, samples []schema.Sample, unit schema.UnitSystem, cfg *contract.Config, fmtFloat func(float64) string) error {
	_, _, _, muted := colorizers(cfg.UseColors)
	if len(samples) == 0 {
		_, err := fmt.Fprintln(w, muted("No weight samples recorded yet"))
		return err
	}

	loc := location(cfg)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Weight (" + unit.Label() + ")", "ID"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range samples {
		data = append(data, []string{
			s.Date.In(loc).Format("Mon 2 Jan 2006 15:04"),
			fmtFloat(unit.ToDisplay(s.Value)),
			muted(s.ID),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d most recent samples\n", len(samples))
	return err
}
