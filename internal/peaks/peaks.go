// Package peaks locates, ranks and characterises peaks in sampled 1-D
// signals (spec.md §4.C).
package peaks

import (
	"fmt"
	"math"
	"sort"
)

// Background selects how the baseline under a peak is computed.
type Background int

const (
	BackgroundZero Background = iota
	BackgroundBilateralMinimum
)

// Peak is one detected peak with its five derived scalars (spec.md §3).
type Peak struct {
	Prominence float64
	X          float64
	Height     float64
	Area       float64
	Width      float64
	SourceIdx  int
}

// Detect locates peaks in the parallel arrays xs, ys (len >= 5), refines
// each to sub-sample position via a parabolic fit through its three
// neighbouring samples, and computes prominence/area/width against the
// chosen background model (spec.md §4.C). Peaks at the first or last
// sample are never reported: the open question in spec.md §9 is resolved
// by requiring a strict interior maximum.
func Detect(xs, ys []float64, bg Background) ([]Peak, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("peaks: xs/ys length mismatch (%d vs %d)", len(xs), len(ys))
	}
	if len(xs) < 5 {
		return nil, fmt.Errorf("peaks: need at least 5 samples, got %d", len(xs))
	}

	var candidates []int
	for i := 1; i < len(ys)-1; i++ {
		if ys[i] > ys[i-1] && ys[i] > ys[i+1] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	out := make([]Peak, len(candidates))
	for ci, i := range candidates {
		y0, y1, y2 := ys[i-1], ys[i], ys[i+1]
		denom := y0 - 2*y1 + y2
		delta := 0.0
		if denom != 0 {
			delta = 0.5 * (y0 - y2) / denom
		}
		height := y1 - 0.25*(y0-y2)*delta
		x := interpolateX(xs, i, delta)

		leftBound := 0
		if ci > 0 {
			leftBound = candidates[ci-1]
		}
		rightBound := len(ys) - 1
		if ci+1 < len(candidates) {
			rightBound = candidates[ci+1]
		}

		background := 0.0
		if bg == BackgroundBilateralMinimum {
			leftValley := minIn(ys, leftBound, i)
			rightValley := minIn(ys, i, rightBound)
			background = math.Min(leftValley, rightValley)
		}

		area := trapz(xs, ys, leftBound, rightBound, background)
		var moment2, weight float64
		for j := leftBound; j < rightBound; j++ {
			x0, x1 := xs[j], xs[j+1]
			v0, v1 := ys[j]-background, ys[j+1]-background
			dx := x1 - x0
			// trapezoidal contribution of (x-xPeak)^2 * v over [x0,x1],
			// sampled at the segment midpoint (sufficient precision for
			// the piecewise-linear model spec.md §4.C specifies).
			mid := (x0 + x1) / 2
			avgV := (v0 + v1) / 2
			moment2 += (mid-x)*(mid-x)*avgV*dx
			weight += avgV * dx
		}
		width := 0.0
		if weight > 0 {
			width = math.Sqrt(moment2 / weight)
		}

		out[ci] = Peak{
			Prominence: height - background,
			X:          x,
			Height:     height,
			Area:       area,
			Width:      width,
			SourceIdx:  i,
		}
	}
	return out, nil
}

func interpolateX(xs []float64, i int, delta float64) float64 {
	if delta >= 0 {
		if i+1 < len(xs) {
			return xs[i] + delta*(xs[i+1]-xs[i])
		}
		return xs[i]
	}
	if i-1 >= 0 {
		return xs[i] + delta*(xs[i]-xs[i-1])
	}
	return xs[i]
}

func minIn(ys []float64, lo, hi int) float64 {
	m := ys[lo]
	for j := lo + 1; j <= hi; j++ {
		if ys[j] < m {
			m = ys[j]
		}
	}
	return m
}

func trapz(xs, ys []float64, lo, hi int, background float64) float64 {
	var sum float64
	for j := lo; j < hi; j++ {
		dx := xs[j+1] - xs[j]
		v0, v1 := ys[j]-background, ys[j+1]-background
		sum += dx * (v0 + v1) / 2
	}
	return sum
}

// ByProminenceDesc sorts peaks by descending prominence.
func ByProminenceDesc(peaks []Peak) {
	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].Prominence > peaks[j].Prominence })
}

// ByAbscissaAsc sorts peaks by ascending abscissa.
func ByAbscissaAsc(peaks []Peak) {
	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].X < peaks[j].X })
}

// TopNThenByAbscissa keeps the n most prominent peaks, then re-sorts the
// survivors by ascending abscissa (spec.md §4.C's "keep top N, then
// resort by abscissa" operation).
func TopNThenByAbscissa(peaks []Peak, n int) []Peak {
	cp := append([]Peak(nil), peaks...)
	ByProminenceDesc(cp)
	if n < len(cp) {
		cp = cp[:n]
	}
	ByAbscissaAsc(cp)
	return cp
}
