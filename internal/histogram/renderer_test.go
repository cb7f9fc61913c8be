package histogram

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/probelab/logitscope/internal/dataset"
	"github.com/probelab/logitscope/internal/page"
)

func layer3() dataset.Dataset {
	return dataset.Dataset{
		X:     []float64{-2, -1, 0, 1, 2},
		Y:     []float64{1, 2, 3, 2, 1},
		Ticks: []float64{-2, 0, 2},
		Title: "Layer 3",
	}
}

func shellFor(t *testing.T, suffixes ...string) *page.Document {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for _, s := range suffixes {
		fmt.Fprintf(&sb, `<div id=%q></div>`, ContainerID(s))
	}
	sb.WriteString("</body></html>")
	doc, err := page.Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("parse shell: %v", err)
	}
	return doc
}

func renderDoc(t *testing.T, doc *page.Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("render doc: %v", err)
	}
	return buf.String()
}

func TestAxisRange(t *testing.T) {
	tests := []struct {
		name   string
		x      []float64
		lo, hi float64
	}{
		{"spanning zero", []float64{-2, -1, 0, 1, 2}, -2.4, 2.4},
		{"all positive", []float64{1, 2, 5}, 1.2, 6},
		{"all negative", []float64{-5, -2}, -6, -2.4},
		{"single bin", []float64{3}, 3.6, 3.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := axisRange(tt.x)
			if math.Abs(lo-tt.lo) > 1e-9 || math.Abs(hi-tt.hi) > 1e-9 {
				t.Errorf("axisRange(%v) = (%v, %v), want (%v, %v)", tt.x, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestSplitBySign(t *testing.T) {
	ds := layer3()
	posX, posY, negX, negY := splitBySign(ds.X, ds.Y)

	wantPosX := []float64{0, 1, 2}
	wantPosY := []float64{3, 2, 1}
	wantNegX := []float64{-2, -1}
	wantNegY := []float64{1, 2}

	assertFloats(t, "posX", posX, wantPosX)
	assertFloats(t, "posY", posY, wantPosY)
	assertFloats(t, "negX", negX, wantNegX)
	assertFloats(t, "negY", negY, wantNegY)

	if len(posX)+len(negX) != len(ds.X) {
		t.Errorf("partition lost bins: %d + %d != %d", len(posX), len(negX), len(ds.X))
	}
}

func assertFloats(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestBuildFigure(t *testing.T) {
	fig, err := BuildFigure("3", layer3())
	if err != nil {
		t.Fatalf("BuildFigure() error = %v", err)
	}

	if fig.ContainerID != "histogram-logits-3" {
		t.Errorf("ContainerID = %q", fig.ContainerID)
	}
	if len(fig.Traces) != 2 {
		t.Fatalf("got %d traces, want 2", len(fig.Traces))
	}
	for _, tr := range fig.Traces {
		if tr.Type != "bar" {
			t.Errorf("trace type = %q, want bar", tr.Type)
		}
	}

	l := fig.Layout
	if l.BarMode != "relative" {
		t.Errorf("BarMode = %q, want relative", l.BarMode)
	}
	if l.ShowLegend {
		t.Error("legend enabled")
	}
	if l.PaperBGColor != "rgba(0,0,0,0)" || l.PlotBGColor != "rgba(0,0,0,0)" {
		t.Errorf("backgrounds not transparent: %q / %q", l.PaperBGColor, l.PlotBGColor)
	}
	if len(l.XAxis.Range) != 2 || math.Abs(l.XAxis.Range[0]+2.4) > 1e-9 || math.Abs(l.XAxis.Range[1]-2.4) > 1e-9 {
		t.Errorf("XAxis.Range = %v, want [-2.4 2.4]", l.XAxis.Range)
	}
	assertFloats(t, "TickVals", l.XAxis.TickVals, []float64{-2, 0, 2})

	if len(l.Shapes) != OverlaySlots || len(l.Annotations) != OverlaySlots {
		t.Fatalf("got %d shapes, %d annotations, want %d each", len(l.Shapes), len(l.Annotations), OverlaySlots)
	}
	for i := range l.Shapes {
		if l.Shapes[i].Visible {
			t.Errorf("shape %d visible at build time", i)
		}
		if l.Shapes[i].Type != "line" || l.Shapes[i].YRef != "paper" || l.Shapes[i].Y1 != 1 {
			t.Errorf("shape %d is not a full-height line: %+v", i, l.Shapes[i])
		}
	}
	for i := range l.Annotations {
		if l.Annotations[i].Visible {
			t.Errorf("annotation %d visible at build time", i)
		}
	}

	if fig.Config.DisplayModeBar {
		t.Error("mode bar enabled")
	}
}

func TestBuildFigureRejectsEmpty(t *testing.T) {
	if _, err := BuildFigure("a", dataset.Dataset{}); err == nil {
		t.Fatal("BuildFigure() succeeded for empty dataset")
	}
}

func TestRender(t *testing.T) {
	doc := shellFor(t, "3")
	r := NewRenderer(doc)

	var logLines []string
	r.Logf = func(format string, args ...any) {
		logLines = append(logLines, fmt.Sprintf(format, args...))
	}

	col := dataset.NewCollection()
	col.Add("3", layer3())
	if err := r.Render(col); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := renderDoc(t, doc)
	if !strings.Contains(out, "<h3>Layer 3</h3>") {
		t.Errorf("title heading missing:\n%s", out)
	}
	if !strings.Contains(out, `Plotly.newPlot("histogram-logits-3"`) {
		t.Errorf("engine invocation missing:\n%s", out)
	}

	if len(logLines) != 1 {
		t.Fatalf("got %d timing lines, want 1", len(logLines))
	}
	if !strings.Contains(logLines[0], "histogram 3") || !strings.Contains(logLines[0], "ms") {
		t.Errorf("unexpected timing line: %q", logLines[0])
	}
}

func TestRenderTitleIdempotent(t *testing.T) {
	doc := shellFor(t, "3")
	r := NewRenderer(doc)
	r.Logf = func(string, ...any) {}

	first := dataset.NewCollection()
	first.Add("3", layer3())
	if err := r.Render(first); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	retitled := layer3()
	retitled.Title = "Layer 3 (updated)"
	second := dataset.NewCollection()
	second.Add("3", retitled)
	if err := r.Render(second); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := renderDoc(t, doc)
	if strings.Count(out, "<h3>") != 1 {
		t.Errorf("headings accumulated across renders:\n%s", out)
	}
	if !strings.Contains(out, "<h3>Layer 3 (updated)</h3>") {
		t.Errorf("heading does not carry latest title:\n%s", out)
	}
	if strings.Count(out, "Plotly.newPlot") != 1 {
		t.Errorf("engine invocations accumulated:\n%s", out)
	}
}

func TestRenderUntitledDatasetAddsNoHeading(t *testing.T) {
	doc := shellFor(t, "plain")
	r := NewRenderer(doc)
	r.Logf = func(string, ...any) {}

	ds := layer3()
	ds.Title = ""
	col := dataset.NewCollection()
	col.Add("plain", ds)
	if err := r.Render(col); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := renderDoc(t, doc)
	for _, tag := range []string{"<h1", "<h2", "<h3", "<h4", "<h5", "<h6"} {
		if strings.Contains(out, tag) {
			t.Errorf("heading created for untitled dataset:\n%s", out)
		}
	}
}

func TestRenderEmptyCollection(t *testing.T) {
	doc := shellFor(t)
	before := renderDoc(t, doc)

	r := NewRenderer(doc)
	logged := 0
	r.Logf = func(string, ...any) { logged++ }

	if err := r.Render(dataset.NewCollection()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if logged != 0 {
		t.Errorf("logged %d lines for empty input", logged)
	}
	if after := renderDoc(t, doc); after != before {
		t.Errorf("document mutated by empty render:\nbefore: %s\nafter: %s", before, after)
	}
}

func TestRenderMissingContainer(t *testing.T) {
	doc := shellFor(t) // no containers
	r := NewRenderer(doc)
	r.Logf = func(string, ...any) {}

	col := dataset.NewCollection()
	col.Add("3", layer3())

	err := r.Render(col)
	if err == nil {
		t.Fatal("Render() succeeded without container")
	}
	if !strings.Contains(err.Error(), "histogram-logits-3") {
		t.Errorf("error does not name the container: %v", err)
	}
}

func TestRenderOrder(t *testing.T) {
	doc := shellFor(t, "b", "a")
	r := NewRenderer(doc)

	var order []string
	r.Logf = func(format string, args ...any) {
		order = append(order, fmt.Sprint(args[0]))
	}

	col := dataset.NewCollection()
	col.Add("b", layer3())
	col.Add("a", layer3())
	if err := r.Render(col); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("render order = %v, want [b a]", order)
	}
}
