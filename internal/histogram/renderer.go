// Package histogram turns named logits-distribution datasets into chart
// configurations and applies them to a page document: one bar chart per
// dataset, split into a non-negative and a negative series, with a pair
// of invisible reference-line and label overlays reserved for later
// interaction.
package histogram

import (
	"fmt"
	"log"
	"time"

	"github.com/probelab/logitscope/internal/dataset"
	"github.com/probelab/logitscope/internal/page"
	"github.com/probelab/logitscope/internal/plotly"
)

const containerPrefix = "histogram-logits-"

// rangePad widens the axis range to 1.2x the data extent on both sides.
const rangePad = 1.2

const (
	positiveColor = "#4A90D9"
	negativeColor = "#FFB347"
	gridColor     = "#e8e8e8"
	lineColor     = "#d62728"
)

// ContainerID returns the container element id for a dataset suffix.
func ContainerID(suffix string) string {
	return containerPrefix + suffix
}

// axisRange computes the fixed horizontal render range [1.2*min(x), 1.2*max(x)].
func axisRange(x []float64) (float64, float64) {
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return rangePad * lo, rangePad * hi
}

// splitBySign partitions the bins into a non-negative and a negative
// series, preserving relative order within each. Every bin lands in
// exactly one of the two.
func splitBySign(x, y []float64) (posX, posY, negX, negY []float64) {
	for i := range x {
		if x[i] >= 0 {
			posX = append(posX, x[i])
			posY = append(posY, y[i])
		} else {
			negX = append(negX, x[i])
			negY = append(negY, y[i])
		}
	}
	return posX, posY, negX, negY
}

// BuildFigure constructs the full chart description for one dataset:
// two sign-partitioned bar traces, the layout with fixed ticks, padded
// range, relative stacking and transparent backgrounds, and the two
// preallocated overlay slots.
func BuildFigure(suffix string, ds dataset.Dataset) (*plotly.Figure, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	lo, hi := axisRange(ds.X)
	posX, posY, negX, negY := splitBySign(ds.X, ds.Y)

	traces := []plotly.Trace{
		{X: posX, Y: posY, Type: "bar", Name: "logits ≥ 0", Marker: &plotly.Marker{Color: positiveColor}},
		{X: negX, Y: negY, Type: "bar", Name: "logits < 0", Marker: &plotly.Marker{Color: negativeColor}},
	}

	layout := plotly.Layout{
		PaperBGColor: "rgba(0,0,0,0)",
		PlotBGColor:  "rgba(0,0,0,0)",
		XAxis: plotly.Axis{
			Range:     []float64{lo, hi},
			TickMode:  "array",
			TickVals:  ds.Ticks,
			GridColor: gridColor,
		},
		YAxis: plotly.Axis{
			GridColor: gridColor,
		},
		BarMode:     "relative",
		ShowLegend:  false,
		Margin:      plotly.Margin{L: 48, R: 16, T: 16, B: 40},
		Shapes:      []plotly.Shape{overlayLine(), overlayLine()},
		Annotations: []plotly.Annotation{overlayLabel(), overlayLabel()},
	}

	return &plotly.Figure{
		ContainerID: ContainerID(suffix),
		Traces:      traces,
		Layout:      layout,
		Config:      plotly.Config{DisplayModeBar: false, Responsive: true},
	}, nil
}

// overlayLine is one of the two invisible vertical reference lines every
// chart carries, spanning the full plot height.
func overlayLine() plotly.Shape {
	return plotly.Shape{
		Type:    "line",
		XRef:    "x",
		YRef:    "paper",
		Y0:      0,
		Y1:      1,
		Line:    plotly.LineStyle{Color: lineColor, Width: 2},
		Visible: false,
	}
}

// overlayLabel is one of the two invisible text labels every chart carries.
func overlayLabel() plotly.Annotation {
	return plotly.Annotation{
		XRef:      "x",
		YRef:      "paper",
		Y:         1,
		XAnchor:   "left",
		ShowArrow: false,
		Visible:   false,
	}
}

// Renderer applies histogram figures to a page document and keeps them
// addressable for overlay updates.
type Renderer struct {
	doc     *page.Document
	figures map[string]*plotly.Figure

	// Logf receives the per-dataset timing line. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// NewRenderer returns a renderer bound to a document. The document must
// already contain a container element per dataset it will render.
func NewRenderer(doc *page.Document) *Renderer {
	return &Renderer{
		doc:     doc,
		figures: make(map[string]*plotly.Figure),
		Logf:    log.Printf,
	}
}

// Render draws every dataset in collection order: build the figure,
// maintain the heading for titled datasets, and write the engine
// invocation after the container. A failure on one dataset aborts the
// pass with the suffix in the error. An empty collection is a no-op.
func (r *Renderer) Render(col *dataset.Collection) error {
	for _, suffix := range col.Suffixes() {
		ds, _ := col.Get(suffix)
		start := time.Now()

		fig, err := BuildFigure(suffix, ds)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", suffix, err)
		}

		id := fig.ContainerID
		if r.doc.Container(id) == nil {
			return fmt.Errorf("dataset %q: container %q not found", suffix, id)
		}

		if ds.Title != "" {
			if err := r.doc.SetHeading(id, ds.Title); err != nil {
				return fmt.Errorf("dataset %q: %w", suffix, err)
			}
		}

		if err := r.emit(fig); err != nil {
			return fmt.Errorf("dataset %q: %w", suffix, err)
		}
		r.figures[id] = fig

		r.Logf("histogram %s rendered in %.1fms", suffix, float64(time.Since(start).Microseconds())/1000)
	}
	return nil
}

// Figure returns the rendered figure for a chart id.
func (r *Renderer) Figure(chartID string) (*plotly.Figure, bool) {
	fig, ok := r.figures[chartID]
	return fig, ok
}

func (r *Renderer) emit(fig *plotly.Figure) error {
	call, err := fig.NewPlotCall()
	if err != nil {
		return err
	}
	return r.doc.SetChartScript(fig.ContainerID, call)
}
