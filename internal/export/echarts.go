package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/probelab/logitscope/internal/dataset"
)

// WriteECharts renders the collection as a self-contained ECharts page,
// one stacked two-series bar chart per dataset. The series are padded to
// the full bin axis so non-negative and negative bars keep their
// positions.
func WriteECharts(w io.Writer, col *dataset.Collection, pageTitle string) error {
	pg := components.NewPage()
	pg.PageTitle = pageTitle

	for _, suffix := range col.Suffixes() {
		ds, _ := col.Get(suffix)
		bar, err := barChart(suffix, ds)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", suffix, err)
		}
		pg.AddCharts(bar)
	}

	if err := pg.Render(w); err != nil {
		return fmt.Errorf("render echarts page: %w", err)
	}
	return nil
}

func barChart(suffix string, ds dataset.Dataset) (*charts.Bar, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	title := ds.Title
	if title == "" {
		title = suffix
	}

	labels := make([]string, len(ds.X))
	pos := make([]opts.BarData, len(ds.X))
	neg := make([]opts.BarData, len(ds.X))
	for i := range ds.X {
		labels[i] = strconv.FormatFloat(ds.X[i], 'g', -1, 64)
		if ds.X[i] >= 0 {
			pos[i] = opts.BarData{Value: ds.Y[i]}
			neg[i] = opts.BarData{Value: 0}
		} else {
			pos[i] = opts.BarData{Value: 0}
			neg[i] = opts.BarData{Value: ds.Y[i]}
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
	)
	bar.SetXAxis(labels).
		AddSeries("logits ≥ 0", pos).
		AddSeries("logits < 0", neg)

	return bar, nil
}
