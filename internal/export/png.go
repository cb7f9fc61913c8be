// Package export renders histogram datasets with alternative chart
// backends: static PNG images and self-contained ECharts pages.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/probelab/logitscope/internal/dataset"
	"github.com/probelab/logitscope/internal/histogram"
)

var (
	positiveFill = drawing.ColorFromHex("4A90D9")
	negativeFill = drawing.ColorFromHex("FFB347")
)

// WritePNG draws one dataset as a static bar-chart PNG with the same
// sign coloring the interactive charts use.
func WritePNG(w io.Writer, ds dataset.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	bars := make([]chart.Value, len(ds.X))
	for i := range ds.X {
		fill := positiveFill
		if ds.X[i] < 0 {
			fill = negativeFill
		}
		bars[i] = chart.Value{
			Value: ds.Y[i],
			Label: strconv.FormatFloat(ds.X[i], 'g', -1, 64),
			Style: chart.Style{FillColor: fill, StrokeWidth: 0},
		}
	}

	graph := chart.BarChart{
		Title:    ds.Title,
		Width:    900,
		Height:   400,
		BarWidth: 24,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// WritePNGs exports every dataset in the collection into the directory,
// one file per suffix, and returns the written paths in collection order.
func WritePNGs(dir string, col *dataset.Collection) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, col.Len())
	for _, suffix := range col.Suffixes() {
		ds, _ := col.Get(suffix)
		path := filepath.Join(dir, histogram.ContainerID(suffix)+".png")

		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", suffix, err)
		}
		if err := WritePNG(f, ds); err != nil {
			f.Close()
			return nil, fmt.Errorf("dataset %q: %w", suffix, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", suffix, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
