// Package plotly models the slice of the Plotly configuration surface
// that the histogram renderer emits: traces, layout, overlay shapes and
// annotations, and render options. The structs marshal to the JSON the
// charting engine expects; drawing itself happens in the browser.
package plotly

import (
	"encoding/json"
	"fmt"
)

// Trace is one bar series.
type Trace struct {
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
}

// Marker styles a trace's bars.
type Marker struct {
	Color string `json:"color,omitempty"`
}

// Axis configures one chart axis. TickVals pins tick positions; Range
// fixes the rendered extent.
type Axis struct {
	Range     []float64 `json:"range,omitempty"`
	TickMode  string    `json:"tickmode,omitempty"`
	TickVals  []float64 `json:"tickvals,omitempty"`
	GridColor string    `json:"gridcolor,omitempty"`
	ZeroLine  bool      `json:"zeroline"`
}

// Margin fixes the chart margins in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// LineStyle styles a reference-line shape.
type LineStyle struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Shape is a reference-line overlay. The renderer preallocates two
// invisible vertical lines per chart; UpdateLine mutates them in place.
type Shape struct {
	Type    string    `json:"type"`
	XRef    string    `json:"xref,omitempty"`
	YRef    string    `json:"yref,omitempty"`
	X0      float64   `json:"x0"`
	X1      float64   `json:"x1"`
	Y0      float64   `json:"y0"`
	Y1      float64   `json:"y1"`
	Line    LineStyle `json:"line"`
	Visible bool      `json:"visible"`
}

// Annotation is a positioned text-label overlay, preallocated invisible
// alongside the shapes.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	XAnchor   string  `json:"xanchor,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Visible   bool    `json:"visible"`
}

// Layout is the chart layout descriptor.
type Layout struct {
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string       `json:"plot_bgcolor,omitempty"`
	XAxis        Axis         `json:"xaxis"`
	YAxis        Axis         `json:"yaxis"`
	BarMode      string       `json:"barmode,omitempty"`
	ShowLegend   bool         `json:"showlegend"`
	Margin       Margin       `json:"margin"`
	Shapes       []Shape      `json:"shapes"`
	Annotations  []Annotation `json:"annotations"`
}

// Config carries the render options passed as Plotly.newPlot's fourth
// argument.
type Config struct {
	DisplayModeBar bool `json:"displayModeBar"`
	Responsive     bool `json:"responsive"`
}

// Figure is a complete chart description bound to a container element.
type Figure struct {
	ContainerID string
	Traces      []Trace
	Layout      Layout
	Config      Config
}

// NewPlotCall serializes the figure into the engine invocation embedded
// in the page.
func (f *Figure) NewPlotCall() (string, error) {
	traces, err := json.Marshal(f.Traces)
	if err != nil {
		return "", fmt.Errorf("marshal traces: %w", err)
	}
	layout, err := json.Marshal(f.Layout)
	if err != nil {
		return "", fmt.Errorf("marshal layout: %w", err)
	}
	config, err := json.Marshal(f.Config)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return fmt.Sprintf("Plotly.newPlot(%q, %s, %s, %s);", f.ContainerID, traces, layout, config), nil
}
