package histogram

import (
	"fmt"

	"github.com/probelab/logitscope/internal/plotly"
)

// Each chart carries two reference-line slots and two label slots,
// preallocated invisible by BuildFigure. The methods below mutate a slot
// and rewrite the chart's engine invocation, so interaction layers never
// have to reach into layout internals by index.

// OverlaySlots is the number of line and label slots per chart.
const OverlaySlots = 2

func (r *Renderer) overlayFigure(chartID string, slot int) (*plotly.Figure, error) {
	if slot < 0 || slot >= OverlaySlots {
		return nil, fmt.Errorf("overlay slot %d out of range [0,%d)", slot, OverlaySlots)
	}
	fig, ok := r.figures[chartID]
	if !ok {
		return nil, fmt.Errorf("chart %q not rendered", chartID)
	}
	return fig, nil
}

// UpdateLine moves one reference line to a horizontal position and makes
// it visible.
func (r *Renderer) UpdateLine(chartID string, slot int, x float64) error {
	fig, err := r.overlayFigure(chartID, slot)
	if err != nil {
		return err
	}
	fig.Layout.Shapes[slot].X0 = x
	fig.Layout.Shapes[slot].X1 = x
	fig.Layout.Shapes[slot].Visible = true
	return r.emit(fig)
}

// HideLine makes one reference line invisible again.
func (r *Renderer) HideLine(chartID string, slot int) error {
	fig, err := r.overlayFigure(chartID, slot)
	if err != nil {
		return err
	}
	fig.Layout.Shapes[slot].Visible = false
	return r.emit(fig)
}

// UpdateLabel moves one text label, sets its text and makes it visible.
func (r *Renderer) UpdateLabel(chartID string, slot int, text string, x float64) error {
	fig, err := r.overlayFigure(chartID, slot)
	if err != nil {
		return err
	}
	fig.Layout.Annotations[slot].Text = text
	fig.Layout.Annotations[slot].X = x
	fig.Layout.Annotations[slot].Visible = true
	return r.emit(fig)
}

// HideLabel makes one text label invisible again.
func (r *Renderer) HideLabel(chartID string, slot int) error {
	fig, err := r.overlayFigure(chartID, slot)
	if err != nil {
		return err
	}
	fig.Layout.Annotations[slot].Visible = false
	return r.emit(fig)
}
