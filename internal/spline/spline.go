// Package spline implements the Catmull-like cubic spline path sampler
// (spec.md §4.F): a tangent-scaled Hermite curve through a sequence of
// control points, adaptively subdivided into a flat polyline suitable
// for rasterisation.
package spline

import "math"

// Point is a 2-D control or sample coordinate.
type Point struct{ X, Y float64 }

// CatmullRomSlackness is the slackness value reproducing the classic
// Catmull-Rom tangent scaling (spec.md §4.F, §9 open-question
// resolution).
const CatmullRomSlackness = 1 / math.Sqrt2

// DefaultPixelTolerance is the default deviation tolerance, in the same
// units as the control points, below which an adaptively subdivided
// segment is accepted as flat enough to draw directly.
const DefaultPixelTolerance = 0.25

// Sample produces the adaptively sampled polyline through knots, given a
// slackness in [0,1] (0: straight segments, CatmullRomSlackness: smooth
// Catmull-Rom curve) and whether the path is closed. tol is the maximum
// allowed deviation of a subdivided chord from the underlying cubic; use
// DefaultPixelTolerance if unsure.
//
// For fewer than two knots the input is returned unchanged: there is no
// segment to interpolate.
func Sample(knots []Point, slackness float64, closed bool, tol float64) []Point {
	n := len(knots)
	if n < 2 {
		out := make([]Point, n)
		copy(out, knots)
		return out
	}
	if tol <= 0 {
		tol = DefaultPixelTolerance
	}

	segCount := n - 1
	if closed {
		segCount = n
	}

	out := []Point{knots[0]}
	for i := 0; i < segCount; i++ {
		p0 := knotAt(knots, i-1, closed)
		p1 := knotAt(knots, i, closed)
		p2 := knotAt(knots, i+1, closed)
		p3 := knotAt(knots, i+2, closed)
		m1 := tangent(p0, p1, p2, slackness, !closed && i == 0)
		m2 := tangent(p1, p2, p3, slackness, !closed && i == segCount-1)
		b0, b1, b2, b3 := hermiteToBezier(p1, m1, p2, m2)
		out = subdivideBezier(out, b0, b1, b2, b3, tol, 0)
	}
	return out
}

// knotAt indexes knots with cyclic wraparound when closed, and clamping
// to the nearest endpoint otherwise (used only to fetch the neighbour
// beyond an open path's first/last knot, which tangent() then ignores
// via the one-sided flag).
func knotAt(knots []Point, i int, closed bool) Point {
	n := len(knots)
	if closed {
		i = ((i % n) + n) % n
		return knots[i]
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return knots[i]
}

// tangent computes the Hermite tangent at the knot between prev and
// next, scaled by slackness. oneSided forces a one-sided finite
// difference (cur - prev or next - cur, whichever is available) instead
// of the symmetric difference, matching spec.md §9's resolution for
// open-path endpoints.
func tangent(prev, cur, next Point, slackness float64, oneSided bool) Point {
	if oneSided {
		d := Point{next.X - cur.X, next.Y - cur.Y}
		if d.X == 0 && d.Y == 0 {
			d = Point{cur.X - prev.X, cur.Y - prev.Y}
		}
		return Point{d.X * 2 * slackness, d.Y * 2 * slackness}
	}
	return Point{(next.X - prev.X) * slackness, (next.Y - prev.Y) * slackness}
}

// hermiteToBezier converts a cubic Hermite segment (p1,m1)-(p2,m2) to its
// equivalent cubic Bezier control points.
func hermiteToBezier(p1, m1, p2, m2 Point) (b0, b1, b2, b3 Point) {
	b0 = p1
	b1 = Point{p1.X + m1.X/3, p1.Y + m1.Y/3}
	b2 = Point{p2.X - m2.X/3, p2.Y - m2.Y/3}
	b3 = p2
	return
}

const maxSplineDepth = 24

// subdivideBezier appends samples of the cubic Bezier (b0,b1,b2,b3) to
// out via De Casteljau bisection, stopping each half once its control
// polygon deviates from its chord by no more than tol, and always
// emitting the segment's final endpoint.
func subdivideBezier(out []Point, b0, b1, b2, b3 Point, tol float64, depth int) []Point {
	if depth >= maxSplineDepth || isFlat(b0, b1, b2, b3, tol) {
		return append(out, b3)
	}
	p01 := mid(b0, b1)
	p12 := mid(b1, b2)
	p23 := mid(b2, b3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	p0123 := mid(p012, p123)

	out = subdivideBezier(out, b0, p01, p012, p0123, tol, depth+1)
	out = subdivideBezier(out, p0123, p123, p23, b3, tol, depth+1)
	return out
}

func mid(a, b Point) Point { return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

// isFlat reports whether both interior control points of a cubic Bezier
// lie within tol of the chord b0-b3.
func isFlat(b0, b1, b2, b3 Point, tol float64) bool {
	return chordDeviation(b0, b3, b1) <= tol && chordDeviation(b0, b3, b2) <= tol
}

// chordDeviation is the perpendicular distance from mid to the line
// through a and b (or the distance to a, if a and b coincide).
func chordDeviation(a, b, mid Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(mid.X-a.X, mid.Y-a.Y)
	}
	return math.Abs(dx*(a.Y-mid.Y)-(a.X-mid.X)*dy) / length
}
