// Package surface implements the scattered-point surface type and its
// regularisation onto a regular grid (spec.md §4.H): an unordered set of
// (x, y, z) samples, propagated outward from hit pixels via the shared
// Laplace smoothing/propagation sweeps.
package surface

// Point is one scattered (x, y, z) sample.
type Point struct{ X, Y, Z float64 }

// Surface is an unordered collection of scattered points with a cached,
// lazily (re)computed bounding box.
type Surface struct {
	points                 []Point
	rangeValid             bool
	xmin, xmax, ymin, ymax float64
}

// New returns an empty surface.
func New() *Surface { return &Surface{} }

// Add appends a point, invalidating the cached range.
func (s *Surface) Add(p Point) {
	s.points = append(s.points, p)
	s.rangeValid = false
}

// Len reports the number of points.
func (s *Surface) Len() int { return len(s.points) }

// Points returns the underlying points. The caller must not mutate it.
func (s *Surface) Points() []Point { return s.points }

// Bounds returns the cached (xmin, xmax, ymin, ymax), recomputing if
// invalidated. ok is false for an empty surface.
func (s *Surface) Bounds() (xmin, xmax, ymin, ymax float64, ok bool) {
	if len(s.points) == 0 {
		return 0, 0, 0, 0, false
	}
	if !s.rangeValid {
		s.xmin, s.xmax = s.points[0].X, s.points[0].X
		s.ymin, s.ymax = s.points[0].Y, s.points[0].Y
		for _, p := range s.points[1:] {
			if p.X < s.xmin {
				s.xmin = p.X
			}
			if p.X > s.xmax {
				s.xmax = p.X
			}
			if p.Y < s.ymin {
				s.ymin = p.Y
			}
			if p.Y > s.ymax {
				s.ymax = p.Y
			}
		}
		s.rangeValid = true
	}
	return s.xmin, s.xmax, s.ymin, s.ymax, true
}
