package gwy

// SelectionKind tags the shape stored by a Selection.
type SelectionKind int

const (
	SelPoint SelectionKind = iota
	SelLine
	SelRectangle
	SelEllipse
	SelPath
	SelLattice
	SelAxis
)

// objectSize returns the per-object arity (number of float64 coordinates)
// fixed by kind, per spec.md §3: point 2, line 4, rectangle 4, path 2 per
// knot (variable, handled separately), lattice 4, axis 1.
func objectSize(kind SelectionKind) int {
	switch kind {
	case SelPoint:
		return 2
	case SelLine, SelRectangle, SelEllipse, SelLattice:
		return 4
	case SelAxis:
		return 1
	case SelPath:
		return 0 // variable arity; stored separately, see Selection.paths
	default:
		badArgument("objectSize: unknown kind %d", kind)
		return 0
	}
}

// Selection is a tagged variant over the fixed shape set {point, line,
// rectangle, ellipse, path, lattice, axis} (spec.md §3). Fixed-arity kinds
// are stored as a maxObjects*objectSize matrix with a count of occupied
// slots; path objects (variable-length knot chains) are stored in a
// parallel slice of polylines, since they don't fit a fixed-stride matrix.
type Selection struct {
	Notifier

	kind       SelectionKind
	maxObjects int
	objSize    int
	data       []float64 // len == maxObjects*objSize, for fixed-arity kinds
	count      int

	paths    [][][2]float64 // used only when kind == SelPath
	closed   []bool
	slack    []float64
}

// NewSelection creates an empty selection of the given kind with room for
// maxObjects objects.
func NewSelection(kind SelectionKind, maxObjects int) *Selection {
	if maxObjects < 0 {
		badArgument("NewSelection: negative maxObjects %d", maxObjects)
	}
	s := &Selection{kind: kind, maxObjects: maxObjects}
	if kind == SelPath {
		s.paths = make([][][2]float64, 0, maxObjects)
		s.closed = make([]bool, 0, maxObjects)
		s.slack = make([]float64, 0, maxObjects)
	} else {
		s.objSize = objectSize(kind)
		s.data = make([]float64, maxObjects*s.objSize)
	}
	return s
}

func (s *Selection) Kind() SelectionKind { return s.kind }
func (s *Selection) Count() int          { return s.count }
func (s *Selection) MaxObjects() int     { return s.maxObjects }

func (s *Selection) checkRoom() {
	if s.count >= s.maxObjects {
		badArgument("Selection: at capacity (%d objects)", s.maxObjects)
	}
}

func (s *Selection) checkIndex(i int) {
	if i < 0 || i >= s.count {
		badArgument("Selection: index %d out of bounds (count %d)", i, s.count)
	}
}

// Add appends a fixed-arity object (len(coords) must equal the kind's
// object size). Invalid for SelPath; use AddPath.
func (s *Selection) Add(coords ...float64) int {
	if s.kind == SelPath {
		badArgument("Selection.Add: use AddPath for path selections")
	}
	if len(coords) != s.objSize {
		badArgument("Selection.Add: want %d coords, got %d", s.objSize, len(coords))
	}
	s.checkRoom()
	copy(s.data[s.count*s.objSize:], coords)
	s.count++
	s.Emit("item-changed")
	return s.count - 1
}

// AddPath appends a path object: a polyline of knots plus its closed flag
// and slackness (spec.md §4.K: "the path selection additionally exposes
// slackness and closed").
func (s *Selection) AddPath(knots [][2]float64, closed bool, slackness float64) int {
	if s.kind != SelPath {
		badArgument("Selection.AddPath: selection kind is not path")
	}
	s.checkRoom()
	cp := append([][2]float64(nil), knots...)
	s.paths = append(s.paths, cp)
	s.closed = append(s.closed, closed)
	s.slack = append(s.slack, slackness)
	s.count++
	s.Emit("item-changed")
	return s.count - 1
}

// Get returns a copy of the fixed-arity object at i.
func (s *Selection) Get(i int) []float64 {
	s.checkIndex(i)
	if s.kind == SelPath {
		badArgument("Selection.Get: use GetPath for path selections")
	}
	out := make([]float64, s.objSize)
	copy(out, s.data[i*s.objSize:(i+1)*s.objSize])
	return out
}

// GetPath returns the knots, closed flag and slackness of path object i.
func (s *Selection) GetPath(i int) (knots [][2]float64, closed bool, slackness float64) {
	s.checkIndex(i)
	if s.kind != SelPath {
		badArgument("Selection.GetPath: selection kind is not path")
	}
	return append([][2]float64(nil), s.paths[i]...), s.closed[i], s.slack[i]
}

// Slackness, Closed report path-object parameters by index, exposed
// directly per spec.md §4.K.
func (s *Selection) Slackness(i int) float64 {
	s.checkIndex(i)
	return s.slack[i]
}

func (s *Selection) Closed(i int) bool {
	s.checkIndex(i)
	return s.closed[i]
}

// Set overwrites the fixed-arity object at i.
func (s *Selection) Set(i int, coords ...float64) {
	s.checkIndex(i)
	if s.kind == SelPath {
		badArgument("Selection.Set: use SetPath for path selections")
	}
	if len(coords) != s.objSize {
		badArgument("Selection.Set: want %d coords, got %d", s.objSize, len(coords))
	}
	copy(s.data[i*s.objSize:(i+1)*s.objSize], coords)
	s.Emit("item-changed")
}

// SetPath overwrites the path object at i.
func (s *Selection) SetPath(i int, knots [][2]float64, closed bool, slackness float64) {
	s.checkIndex(i)
	if s.kind != SelPath {
		badArgument("Selection.SetPath: selection kind is not path")
	}
	s.paths[i] = append([][2]float64(nil), knots...)
	s.closed[i] = closed
	s.slack[i] = slackness
	s.Emit("item-changed")
}

// Remove deletes object i, shifting subsequent objects down by one slot.
func (s *Selection) Remove(i int) {
	s.checkIndex(i)
	if s.kind == SelPath {
		s.paths = append(s.paths[:i], s.paths[i+1:]...)
		s.closed = append(s.closed[:i], s.closed[i+1:]...)
		s.slack = append(s.slack[:i], s.slack[i+1:]...)
	} else {
		copy(s.data[i*s.objSize:], s.data[(i+1)*s.objSize:s.count*s.objSize])
	}
	s.count--
	s.Emit("item-changed")
}

// Move translates object i by (dx, dy). For fixed-arity kinds every
// (x,y) coordinate pair in the object is shifted; for paths, every knot.
func (s *Selection) Move(i int, dx, dy float64) {
	s.checkIndex(i)
	if s.kind == SelPath {
		for k := range s.paths[i] {
			s.paths[i][k][0] += dx
			s.paths[i][k][1] += dy
		}
	} else {
		base := i * s.objSize
		for k := 0; k+1 < s.objSize; k += 2 {
			s.data[base+k] += dx
			s.data[base+k+1] += dy
		}
	}
	s.Emit("item-changed")
}

// boundsOf returns the (x0,y0)-(x1,y1) bounding rectangle of object i.
func (s *Selection) boundsOf(i int) (x0, y0, x1, y1 float64) {
	if s.kind == SelPath {
		pts := s.paths[i]
		if len(pts) == 0 {
			return 0, 0, 0, 0
		}
		x0, y0 = pts[0][0], pts[0][1]
		x1, y1 = x0, y0
		for _, p := range pts[1:] {
			if p[0] < x0 {
				x0 = p[0]
			}
			if p[0] > x1 {
				x1 = p[0]
			}
			if p[1] < y0 {
				y0 = p[1]
			}
			if p[1] > y1 {
				y1 = p[1]
			}
		}
		return
	}
	base := i * s.objSize
	xs := make([]float64, 0, s.objSize/2)
	ys := make([]float64, 0, s.objSize/2)
	for k := 0; k+1 < s.objSize; k += 2 {
		xs = append(xs, s.data[base+k])
		ys = append(ys, s.data[base+k+1])
	}
	x0, x1 = minMax(xs)
	y0, y1 = minMax(ys)
	return
}

func minMax(v []float64) (lo, hi float64) {
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return
}

// Crop removes every object not fully inside [x0,y0]-[x1,y1] (spec.md
// §4.K: "Crop removes every object not fully inside the given rectangle").
func (s *Selection) Crop(x0, y0, x1, y1 float64) {
	s.FilterInPlace(func(i int) bool {
		ox0, oy0, ox1, oy1 := s.boundsOf(i)
		return ox0 >= x0 && oy0 >= y0 && ox1 <= x1 && oy1 <= y1
	})
}

// FilterInPlace keeps only the objects for which keep(index) returns true,
// re-indexing the survivors in order (spec.md §4.K).
func (s *Selection) FilterInPlace(keep func(i int) bool) {
	w := 0
	for i := 0; i < s.count; i++ {
		if !keep(i) {
			continue
		}
		if w != i {
			if s.kind == SelPath {
				s.paths[w] = s.paths[i]
				s.closed[w] = s.closed[i]
				s.slack[w] = s.slack[i]
			} else {
				copy(s.data[w*s.objSize:(w+1)*s.objSize], s.data[i*s.objSize:(i+1)*s.objSize])
			}
		}
		w++
	}
	if s.kind == SelPath {
		s.paths = s.paths[:w]
		s.closed = s.closed[:w]
		s.slack = s.slack[:w]
	}
	s.count = w
	s.Emit("data-changed")
}
