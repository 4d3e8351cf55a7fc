package surface

import (
	"math"

	"github.com/christian-sahlmann/gwyddion-sub013/internal/laplace"
)

// AutoResolution derives a missing xres/yres (caller passes 0 for
// either) from the point count and the bounding box's aspect ratio
// (spec.md §4.H): `p = sqrt(xlen*ylen/n)` pixels per side, clamped to
// [1, n].
func AutoResolution(n int, xlen, ylen float64, xres, yres int) (int, int) {
	if xres > 0 && yres > 0 {
		return xres, yres
	}
	p := 1.0
	if n > 0 {
		p = math.Sqrt(xlen * ylen / float64(n))
	}
	if xres <= 0 {
		xres = clampRes(round(xlen/p)+1, n)
	}
	if yres <= 0 {
		yres = clampRes(round(ylen/p)+1, n)
	}
	return xres, yres
}

func round(x float64) int { return int(math.Round(x)) }

func clampRes(r, n int) int {
	if r < 1 {
		return 1
	}
	if n > 0 && r > n {
		return n
	}
	return r
}

// Regularize resamples the scattered surface onto an xres*yres regular
// grid over [x0,x0+xlen)x[y0,y0+ylen) (spec.md §4.H): each point's
// coordinates are truncated to a pixel, hit pixels average their
// accumulated samples, and empty pixels are filled by alternating
// smoothing/propagation sweeps over already-initialised 8-neighbours
// until none remain uninitialised. progress, if non-nil, is polled once
// per sweep pair; a false return cancels the fill, leaving some pixels
// still zero.
//
// A surface with no points produces an all-zero grid (step 2 of
// spec.md §4.H).
func (s *Surface) Regularize(x0, y0, xlen, ylen float64, xres, yres int, progress func() bool) (data []float64, cancelled bool) {
	data = make([]float64, xres*yres)
	if len(s.points) == 0 || xres <= 0 || yres <= 0 {
		return data, false
	}

	counts := make([]int, xres*yres)
	initialized := make([]bool, xres*yres)
	dx := xlen / float64(xres)
	dy := ylen / float64(yres)

	remaining := xres * yres
	for _, p := range s.points {
		col := int((p.X - x0) / dx)
		row := int((p.Y - y0) / dy)
		if col < 0 || col >= xres || row < 0 || row >= yres {
			continue
		}
		idx := row*xres + col
		if counts[idx] == 0 {
			remaining--
		}
		data[idx] += p.Z
		counts[idx]++
	}
	for i, c := range counts {
		if c > 0 {
			data[i] /= float64(c)
			initialized[i] = true
		}
	}
	if remaining == 0 {
		return data, false
	}

	for remaining > 0 {
		smoothed := make([]float64, xres*yres)
		copy(smoothed, data)
		for row := 0; row < yres; row++ {
			for col := 0; col < xres; col++ {
				idx := row*xres + col
				if !initialized[idx] {
					continue
				}
				if m, ok := laplace.EightNeighborMean(data, initialized, xres, yres, col, row); ok {
					smoothed[idx] = m
				}
			}
		}
		data = smoothed

		freshlyInit := make([]bool, xres*yres)
		for row := 0; row < yres; row++ {
			for col := 0; col < xres; col++ {
				idx := row*xres + col
				if initialized[idx] {
					continue
				}
				if m, ok := laplace.EightNeighborMean(data, initialized, xres, yres, col, row); ok {
					data[idx] = m
					freshlyInit[idx] = true
				}
			}
		}
		for idx, f := range freshlyInit {
			if f {
				initialized[idx] = true
				remaining--
			}
		}

		if progress != nil && !progress() {
			return data, true
		}
	}
	return data, false
}
