package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/probelab/logitscope/internal/dataset"
)

func TestWriteECharts(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteECharts(&buf, sampleCollection(), "Logits Histograms"); err != nil {
		t.Fatalf("WriteECharts() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"echarts",
		"Layer 3", // titled dataset keeps its title
		"7",       // untitled dataset falls back to its suffix
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteECharts() output missing %q", want)
		}
	}
}

func TestWriteEChartsEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteECharts(&buf, dataset.NewCollection(), "empty"); err != nil {
		t.Fatalf("WriteECharts() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("no page shell written for empty input")
	}
}
