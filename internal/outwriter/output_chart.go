package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// errParquetChart is returned when a chart is requested in Parquet form.
var errParquetChart = errors.New("parquet output is only supported by the samples and export commands")

// PrintChartResult outputs the chart, dispatching based on the output format configured.
func PrintChartResult(result schema.ChartResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForChart(w, result)
		}, "Wrote JSON chart"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForChart(w, result, cfg, fmtFloat, intFmt)
		}, "Wrote CSV chart"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errParquetChart
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartTable(w, result, cfg, fmtFloat, intFmt, duration)
		}, "Wrote chart")
	}
	return nil
}

// chartJSON adds display-unit buckets next to the canonical ones.
type chartJSON struct {
	schema.ChartResult
	DisplayBuckets []schema.Bucket `json:"display_buckets"`
}

// writeJSONResultsForChart marshals the chart to JSON and writes it.
func writeJSONResultsForChart(w io.Writer, result schema.ChartResult) error {
	return writeJSON(w, chartJSON{ChartResult: result, DisplayBuckets: result.DisplayBuckets()})
}

// writeCSVResultsForChart writes one row per bucket in the display unit.
func writeCSVResultsForChart(w io.Writer, result schema.ChartResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	loc := location(cfg)
	header := []string{"bucket", "average", "count", "unit"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, b := range result.DisplayBuckets() {
			row := []string{
				b.Key.In(loc).Format(contract.DateFormat),
				fmtFloat(b.Average),
				fmt.Sprintf(intFmt, b.Count),
				result.Unit.Label(),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeChartTable draws the buckets as a table with a horizontal bar per row.
func writeChartTable(w io.Writer, result schema.ChartResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	header, low, high, muted := colorizers(cfg.UseColors)
	loc := location(cfg)

	if _, err := fmt.Fprintf(w, "%s  %s\n", header(result.Period.Title()), header(result.Label)); err != nil {
		return err
	}

	buckets := result.DisplayBuckets()
	if len(buckets) == 0 {
		if _, err := fmt.Fprintln(w, muted("No weight samples in this window")); err != nil {
			return err
		}
	} else {
		table := tablewriter.NewWriter(w)
		keyHeader := "Day"
		if result.Period == schema.YearPeriod || result.Period == schema.TotalPeriod {
			keyHeader = "Month"
		}
		table.Header([]string{keyHeader, "Average (" + result.Unit.Label() + ")", "Samples", ""})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		lo, hi := bucketRange(buckets)
		barWidth := GetMaxBarWidth(cfg)
		var data [][]string
		for _, b := range buckets {
			avg := fmtFloat(b.Average)
			switch b.Average {
			case hi:
				avg = high(avg)
			case lo:
				avg = low(avg)
			}
			data = append(data, []string{
				bucketLabel(b.Key, result.Period, loc),
				avg,
				fmt.Sprintf(intFmt, b.Count),
				renderBar(b.Average, lo, hi, barWidth),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	ticks := make([]string, 0, len(result.Ticks))
	for _, t := range result.Ticks {
		ticks = append(ticks, tickLabel(t, result.Period, loc))
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", muted("Axis:"), strings.Join(ticks, " | ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Min %s  Max %s %s (%d samples)\n",
		low(fmtFloat(result.MinDisplay)), high(fmtFloat(result.MaxDisplay)), result.Unit.Label(), result.SampleCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Chart computed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// bucketRange returns the lowest and highest bucket averages.
func bucketRange(buckets []schema.Bucket) (float64, float64) {
	lo, hi := buckets[0].Average, buckets[0].Average
	for _, b := range buckets[1:] {
		lo = min(lo, b.Average)
		hi = max(hi, b.Average)
	}
	return lo, hi
}

// renderBar scales v between lo and hi into a bar of at most width cells.
// Every non-empty bucket gets at least one cell.
func renderBar(v, lo, hi float64, width int) string {
	if width <= 0 {
		return ""
	}
	n := width
	if hi > lo {
		n = 1 + int(math.Round((v-lo)/(hi-lo)*float64(width-1)))
	}
	n = max(1, min(n, width))
	return strings.Repeat("█", n)
}
