package outwriter

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Image geometry and the y-axis ceiling used when there is nothing to plot.
const (
	imageWidth     = 1024
	imageHeight    = 512
	emptyChartMaxY = 110
)

// lineColor is the stroke used for the weight series.
var lineColor = drawing.ColorFromHex("1f77b4")

// WriteChartImage renders the chart to cfg.ImagePath in cfg.ImageFormat.
func WriteChartImage(result schema.ChartResult, cfg *contract.Config) error {
	file, err := os.Create(cfg.ImagePath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if err := RenderChart(file, result, cfg.ImageFormat, location(cfg)); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	fmt.Fprintf(os.Stderr, "🖼️  Wrote chart image to %s\n", cfg.ImagePath)
	return nil
}

// axisCeiling is the top of the y-axis: the highest plotted average rounded up.
func axisCeiling(buckets []schema.Bucket) float64 {
	top := 0.0
	for _, b := range buckets {
		top = max(top, b.Average)
	}
	if top <= 0 {
		return emptyChartMaxY
	}
	return math.Ceil(top)
}

// RenderChart draws the bucketed series as a line chart with dots.
// The x-axis spans the window and carries the result's ticks.
func RenderChart(w io.Writer, result schema.ChartResult, format schema.ImageFormat, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	buckets := result.DisplayBuckets()

	xMin := result.Window.Start
	xMax := result.Window.End
	if !xMax.After(xMin) {
		// A single-day window still needs a non-zero range
		xMax = xMin.AddDate(0, 0, 1)
	}

	yMax := axisCeiling(buckets)

	// An invisible baseline keeps the renderer happy when there are no buckets
	series := []chart.Series{
		chart.TimeSeries{
			Name:    "baseline",
			Style:   chart.Style{Hidden: true},
			XValues: []time.Time{xMin, xMax},
			YValues: []float64{0, 0},
		},
	}
	if len(buckets) > 0 {
		xs := make([]time.Time, len(buckets))
		ys := make([]float64, len(buckets))
		for i, b := range buckets {
			xs[i] = b.Key
			ys[i] = b.Average
		}
		series = append(series, chart.TimeSeries{
			Name: result.Unit.Title(),
			Style: chart.Style{
				StrokeColor: lineColor,
				StrokeWidth: 2,
				DotColor:    lineColor,
				DotWidth:    4,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	ticks := make([]chart.Tick, 0, len(result.Ticks))
	for _, t := range result.Ticks {
		ticks = append(ticks, chart.Tick{
			Value: chart.TimeToFloat64(t),
			Label: tickLabel(t, result.Period, loc),
		})
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("%s: %s", result.Period.Title(), result.Label),
		Width:      imageWidth,
		Height:     imageHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(xMin),
				Max: chart.TimeToFloat64(xMax),
			},
		},
		YAxis: chart.YAxis{
			Name:  result.Unit.Label(),
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: series,
	}

	renderer := chart.PNG
	if format == schema.SVGImage {
		renderer = chart.SVG
	}
	return graph.Render(renderer, w)
}
