package gwy

import "github.com/christian-sahlmann/gwyddion-sub013/internal/spline"

// SplinePoint is a 2-D knot or sampled curve coordinate.
type SplinePoint = spline.Point

// CatmullRomSlackness reproduces the classic Catmull-Rom curve when
// passed as SamplePath's slackness (spec.md §4.F).
const CatmullRomSlackness = spline.CatmullRomSlackness

// DefaultSplinePixelTolerance is a reasonable default deviation
// tolerance for SamplePath when the caller has no specific drawing
// target in mind.
const DefaultSplinePixelTolerance = spline.DefaultPixelTolerance

// SamplePath adaptively samples the Catmull-like cubic spline through
// knots (spec.md §4.F). slackness 0 yields straight segments between
// knots; CatmullRomSlackness yields the Catmull-Rom curve. closed treats
// the knots cyclically; tol bounds the deviation of each emitted chord
// from the underlying cubic (pass 0 to use DefaultSplinePixelTolerance).
func SamplePath(knots []SplinePoint, slackness float64, closed bool, tol float64) []SplinePoint {
	return spline.Sample(knots, slackness, closed, tol)
}
