package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
)

// PrintStatsResult outputs the window summary, dispatching based on the output format configured.
func PrintStatsResult(result schema.StatsResult, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON stats"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForStats(w, result, cfg, fmtFloat, intFmt)
		}, "Wrote CSV stats"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errParquetChart
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, renderStatsPanel(result, cfg, fmtFloat))
			return err
		}, "Wrote stats")
	}
	return nil
}

// writeCSVResultsForStats writes the summary as a single CSV row.
func writeCSVResultsForStats(w io.Writer, result schema.StatsResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	loc := location(cfg)
	header := []string{"period", "label", "start", "end", "unit", "samples", "min", "max", "latest_date", "latest_value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		latestDate, latestValue := "", ""
		if result.Latest != nil {
			latestDate = result.Latest.Date.In(loc).Format(contract.DateTimeFormat)
			latestValue = fmtFloat(result.Unit.ToDisplay(result.Latest.Value))
		}
		return cw.Write([]string{
			string(result.Period),
			result.Label,
			result.Window.Start.In(loc).Format(contract.DateFormat),
			result.Window.End.In(loc).Format(contract.DateFormat),
			result.Unit.Label(),
			fmt.Sprintf(intFmt, result.SampleCount),
			fmtFloat(result.MinDisplay),
			fmtFloat(result.MaxDisplay),
			latestDate,
			latestValue,
		})
	})
}

// renderStatsPanel lays out the summary inside a rounded border.
func renderStatsPanel(result schema.StatsResult, cfg *contract.Config, fmtFloat func(float64) string) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Width(10)
	lowStyle := lipgloss.NewStyle()
	highStyle := lipgloss.NewStyle()
	panelStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if cfg.UseColors {
		titleStyle = titleStyle.Foreground(lipgloss.Color("6"))
		labelStyle = labelStyle.Foreground(lipgloss.Color("8"))
		lowStyle = lowStyle.Foreground(lipgloss.Color("2"))
		highStyle = highStyle.Foreground(lipgloss.Color("1"))
		panelStyle = panelStyle.BorderForeground(lipgloss.Color("6"))
	}

	unit := result.Unit.Label()
	line := func(label, value string) string {
		return labelStyle.Render(label) + value
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", result.Period.Title(), result.Label)))
	b.WriteString("\n\n")
	if result.SampleCount == 0 {
		b.WriteString("No weight samples in this window")
		return panelStyle.Render(b.String())
	}

	b.WriteString(line("Samples", fmt.Sprintf("%d", result.SampleCount)))
	b.WriteString("\n")
	b.WriteString(line("Min", lowStyle.Render(fmtFloat(result.MinDisplay)+" "+unit)))
	b.WriteString("\n")
	b.WriteString(line("Max", highStyle.Render(fmtFloat(result.MaxDisplay)+" "+unit)))
	if result.Latest != nil {
		latest := result.Latest
		b.WriteString("\n")
		b.WriteString(line("Latest", fmt.Sprintf("%s %s on %s",
			fmtFloat(result.Unit.ToDisplay(latest.Value)), unit,
			latest.Date.In(location(cfg)).Format(contract.DateFormat))))
	}
	return panelStyle.Render(b.String())
}
