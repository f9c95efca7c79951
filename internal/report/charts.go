package report

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"pingparser/internal/models"
)

type latencySeries struct {
	timestamps    []time.Time
	min, avg, max []float64
}

// GenerateLatencyChart renders min/avg/max latency of host over its recorded
// history as a PNG written to filename
func (g *Generator) GenerateLatencyChart(ctx context.Context, filename, host string) error {
	entries, err := g.history.GetRecent(ctx, host, HistoryLimit)
	if err != nil {
		return err
	}

	data := collectLatency(entries)
	if len(data.timestamps) < 2 {
		return ErrNotEnoughData
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Network Latency - %s", host),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Time",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			ValueFormatter: chart.TimeMinuteValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Latency (ms)",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			latencyTimeSeries("Min", 0, data.timestamps, data.min),
			latencyTimeSeries("Avg", 1, data.timestamps, data.avg),
			latencyTimeSeries("Max", 2, data.timestamps, data.max),
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create chart file")
	}

	if err := graph.Render(chart.PNG, file); err != nil {
		file.Close()
		return errors.Wrap(err, "failed to render chart")
	}
	return file.Close()
}

func latencyTimeSeries(name string, color int, x []time.Time, y []float64) chart.TimeSeries {
	return chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: chart.GetDefaultColor(color),
			StrokeWidth: 2,
		},
		XValues: x,
		YValues: y,
	}
}

// collectLatency converts the recorded text values, skipping entries without
// a usable triplet
func collectLatency(entries []models.HistoryEntry) latencySeries {
	var data latencySeries
	for _, e := range entries {
		if !e.Summary.HasLatency() {
			continue
		}
		min, errMin := strconv.ParseFloat(e.Summary.MinPing, 64)
		avg, errAvg := strconv.ParseFloat(e.Summary.AvgPing, 64)
		max, errMax := strconv.ParseFloat(e.Summary.MaxPing, 64)
		if errMin != nil || errAvg != nil || errMax != nil {
			continue
		}
		data.timestamps = append(data.timestamps, e.ParsedAt)
		data.min = append(data.min, min)
		data.avg = append(data.avg, avg)
		data.max = append(data.max, max)
	}
	return data
}
