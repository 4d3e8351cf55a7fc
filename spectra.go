package gwy

import "math"

// spectrumEntry is one (x, y, Line) triple in a SpectraCollection.
type spectrumEntry struct {
	x, y float64
	line *Line
}

// SpectraCollection is an ordered list of (x, y, Line) point-spectra with
// a shared lateral unit and a title (spec.md §3, §4.L). It is a secondary
// dataset consumed by the application layer, not a CORE hardest-part
// component; this is the spec.md §4.L supplemented feature grounded on
// original_source/libprocess/spectra.c.
type SpectraCollection struct {
	Notifier

	Title   string
	lateral Unit
	entries []spectrumEntry
}

// NewSpectraCollection creates an empty collection with the given lateral
// unit and title.
func NewSpectraCollection(title string, lateral Unit) *SpectraCollection {
	return &SpectraCollection{Title: title, lateral: lateral}
}

func (c *SpectraCollection) LateralUnit() Unit { return c.lateral }
func (c *SpectraCollection) Len() int          { return len(c.entries) }

// Add appends a spectrum at (x, y).
func (c *SpectraCollection) Add(x, y float64, line *Line) int {
	c.entries = append(c.entries, spectrumEntry{x, y, line})
	c.Emit("item-changed")
	return len(c.entries) - 1
}

// RemoveAt deletes the spectrum at index i.
func (c *SpectraCollection) RemoveAt(i int) {
	if i < 0 || i >= len(c.entries) {
		badArgument("SpectraCollection.RemoveAt: index %d out of bounds", i)
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.Emit("item-changed")
}

// At returns the (x, y, Line) triple at index i.
func (c *SpectraCollection) At(i int) (x, y float64, line *Line) {
	if i < 0 || i >= len(c.entries) {
		badArgument("SpectraCollection.At: index %d out of bounds", i)
	}
	e := c.entries[i]
	return e.x, e.y, e.line
}

// Nearest returns the index of the spectrum whose (x, y) position is
// closest to the query point, by Euclidean distance — the "argmin of a
// metric over a list" pattern spec.md §9 calls for in place of the
// upstream selection-scanning control flow. ok is false for an empty
// collection.
func (c *SpectraCollection) Nearest(x, y float64) (idx int, ok bool) {
	if len(c.entries) == 0 {
		return 0, false
	}
	best := 0
	bestDist := math.Inf(1)
	for i, e := range c.entries {
		dx, dy := e.x-x, e.y-y
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, true
}
