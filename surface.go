package gwy

import "github.com/christian-sahlmann/gwyddion-sub013/internal/surface"

// SurfacePoint is one scattered (x, y, z) sample (spec.md §4.H).
type SurfacePoint = surface.Point

// Surface is an unordered collection of scattered height samples with a
// cached bounding box, regularisable onto a regular Field grid.
type Surface struct {
	s *surface.Surface
}

// NewSurface returns an empty surface.
func NewSurface() *Surface { return &Surface{s: surface.New()} }

// Add appends a scattered point.
func (s *Surface) Add(p SurfacePoint) { s.s.Add(p) }

// Len reports the number of points.
func (s *Surface) Len() int { return s.s.Len() }

// Points returns the underlying points; the caller must not mutate it.
func (s *Surface) Points() []SurfacePoint { return s.s.Points() }

// Bounds returns the cached (xmin, xmax, ymin, ymax); ok is false for an
// empty surface.
func (s *Surface) Bounds() (xmin, xmax, ymin, ymax float64, ok bool) { return s.s.Bounds() }

// AutoResolution derives a missing xres/yres (pass 0 for either) from
// the surface's point count and bounding-box aspect ratio (spec.md
// §4.H).
func (s *Surface) AutoResolution(xres, yres int) (int, int) {
	xmin, xmax, ymin, ymax, ok := s.s.Bounds()
	if !ok {
		return 1, 1
	}
	return surface.AutoResolution(s.s.Len(), xmax-xmin, ymax-ymin, xres, yres)
}

// Regularize resamples the surface onto an xres*yres Field covering
// [x0,x0+xlen)x[y0,y0+ylen), filling gaps by alternating
// smoothing/propagation sweeps over the 8-neighbourhood (spec.md §4.H).
// progress, if non-nil, is polled once per sweep pair.
func (s *Surface) Regularize(x0, y0, xlen, ylen float64, xres, yres int, progress func() bool) (field *Field, cancelled bool) {
	data, cancelled := s.s.Regularize(x0, y0, xlen, ylen, xres, yres, progress)
	f := NewField(xres, yres, xlen, ylen)
	f.SetOffsets(x0, y0)
	copy(f.Data(), data)
	return f, cancelled
}

// FromField reshapes a dense Field into a Surface, losslessly: pixel
// (col,row) becomes the point `((col+0.5)*dx+xoff, (row+0.5)*dy+yoff,
// field[row,col])` (spec.md §4.H).
func (s *Surface) FromField(f *Field) {
	dx, dy := f.DX(), f.DY()
	for row := 0; row < f.YRes(); row++ {
		for col := 0; col < f.XRes(); col++ {
			s.Add(SurfacePoint{
				X: (float64(col)+0.5)*dx + f.XOff(),
				Y: (float64(row)+0.5)*dy + f.YOff(),
				Z: f.At(col, row),
			})
		}
	}
}
