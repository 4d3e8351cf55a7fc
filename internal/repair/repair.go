// Package repair implements the four hole-repair interpolators for
// rectangular regions of a 2-D field (spec.md §4.E): hyperbolic,
// pseudo-Laplace, iterative Laplace, and fractal. All four read only the
// one-pixel-wide outer border of the region [xmin,xmax)x[ymin,ymax) and
// write only its interior, leaving every other pixel bit-identical.
package repair

import "fmt"

// Rect is a hole's bounding box within an xres*yres field.
type Rect struct {
	XMin, YMin, XMax, YMax int
}

func (r Rect) validate(xres, yres int) error {
	if r.XMin < 1 || r.YMin < 1 || r.XMax > xres-1 || r.YMax > yres-1 || r.XMin >= r.XMax || r.YMin >= r.YMax {
		return fmt.Errorf("repair: invalid rectangle %+v in %dx%d field (needs a 1px border)", r, xres, yres)
	}
	return nil
}

func at(data []float64, xres, col, row int) float64 { return data[row*xres+col] }
func set(data []float64, xres, col, row int, v float64) { data[row*xres+col] = v }
