package dataset

import (
	"fmt"
)

// Dataset is one named logits histogram: bin positions, bin heights,
// fixed axis tick positions and an optional display title.
type Dataset struct {
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Ticks []float64 `json:"ticks"`
	Title string    `json:"title,omitempty"`
}

// Validate checks the per-dataset invariants: x and y are non-empty and
// index-aligned.
func (d Dataset) Validate() error {
	if len(d.X) == 0 {
		return fmt.Errorf("empty x sequence")
	}
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("x/y length mismatch: %d vs %d", len(d.X), len(d.Y))
	}
	return nil
}

// Collection holds datasets keyed by suffix, preserving the order in
// which they were added. Render passes iterate in that order.
type Collection struct {
	order []string
	byID  map[string]Dataset
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byID: make(map[string]Dataset)}
}

// Add inserts or replaces the dataset for a suffix. Replacing keeps the
// suffix's original position.
func (c *Collection) Add(suffix string, ds Dataset) {
	if _, ok := c.byID[suffix]; !ok {
		c.order = append(c.order, suffix)
	}
	c.byID[suffix] = ds
}

// Get returns the dataset for a suffix.
func (c *Collection) Get(suffix string) (Dataset, bool) {
	ds, ok := c.byID[suffix]
	return ds, ok
}

// Suffixes returns the suffixes in insertion order.
func (c *Collection) Suffixes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of datasets.
func (c *Collection) Len() int {
	return len(c.order)
}
