package charts

import (
	"bytes"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/pkg/errors"
)

const defaultHeight = "320px"

// Point is a single labelled bar
type Point struct {
	Label string
	Value float64
}

// Series is a named set of bars sharing the x axis
type Series struct {
	Name   string
	Points []Point
}

// BarRenderer renders bar charts to standalone HTML documents and memoizes the result per key
type BarRenderer struct {
	theme   string
	mu      sync.RWMutex
	entries map[string]string
}

// NewBarRenderer creates a renderer using the given echarts theme. An empty theme falls back to westeros.
func NewBarRenderer(theme string) *BarRenderer {
	if theme == "" {
		theme = types.ThemeWesteros
	}
	return &BarRenderer{
		theme:   theme,
		entries: map[string]string{},
	}
}

// Render returns the chart HTML for key, rendering it on first use
func (r *BarRenderer) Render(key, title string, xAxis []string, series []Series) (string, error) {
	r.mu.RLock()
	html, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return html, nil
	}

	html, err := r.render(title, xAxis, series)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.entries[key] = html
	r.mu.Unlock()
	return html, nil
}

func (r *BarRenderer) render(title string, xAxis []string, series []Series) (string, error) {
	if len(series) == 0 {
		return "", errors.New("chart series is required")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  r.theme,
			Width:  "100%",
			Height: defaultHeight,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(len(series) > 1)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xAxis)
	for _, s := range series {
		bar.AddSeries(s.Name, toBarData(s.Points))
	}

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", errors.Wrap(err, "could not render bar chart")
	}
	return buf.String(), nil
}

func toBarData(points []Point) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, point := range points {
		data[i] = opts.BarData{
			Name:  point.Label,
			Value: point.Value,
		}
	}
	return data
}
