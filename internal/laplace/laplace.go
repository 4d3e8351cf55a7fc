// Package laplace holds the discrete Laplace relaxation primitives
// shared by the hole-repair interpolators (spec.md §4.E) and the
// scattered-surface regulariser (spec.md §4.H): both propagate values
// outward from a set of known pixels via local averaging.
package laplace

// Relax performs discrete Laplace relaxation over an xres*yres grid:
// every non-pinned pixel is nudged toward the average of its four
// orthogonal neighbours by coeff each iteration, clamped to the grid
// border. It stops when the maximum pixel delta falls below tol or after
// maxIter iterations, whichever comes first, and reports the number of
// iterations actually run. progress, if non-nil, is polled once per
// iteration; a false return cancels the relaxation and leaves data at
// its last computed (valid, if partial) state (spec.md §5).
func Relax(data []float64, xres, yres int, pinned []bool, coeff float64, maxIter int, tol float64, progress func() bool) (iterations int, cancelled bool) {
	next := make([]float64, len(data))
	for iter := 0; iter < maxIter; iter++ {
		maxDelta := 0.0
		copy(next, data)
		for row := 0; row < yres; row++ {
			for col := 0; col < xres; col++ {
				idx := row*xres + col
				if pinned[idx] {
					continue
				}
				sum := 0.0
				n := 0
				if col > 0 {
					sum += data[idx-1]
					n++
				}
				if col < xres-1 {
					sum += data[idx+1]
					n++
				}
				if row > 0 {
					sum += data[idx-xres]
					n++
				}
				if row < yres-1 {
					sum += data[idx+xres]
					n++
				}
				if n == 0 {
					continue
				}
				avg := sum / float64(n)
				delta := avg - data[idx]
				next[idx] = data[idx] + coeff*delta
				if d := delta; d > maxDelta {
					maxDelta = d
				} else if -d > maxDelta {
					maxDelta = -d
				}
			}
		}
		copy(data, next)
		iterations = iter + 1
		if progress != nil && !progress() {
			return iterations, true
		}
		if maxDelta < tol {
			break
		}
	}
	return iterations, false
}

// EightNeighborMean averages the already-initialised 8-neighbours of
// (col, row), used by the scattered-surface regulariser's smoothing and
// propagation sweeps (spec.md §4.H). ok is false if no neighbour is
// initialised.
func EightNeighborMean(data []float64, initialized []bool, xres, yres, col, row int) (mean float64, ok bool) {
	var sum float64
	var n int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := col+dx, row+dy
			if nx < 0 || nx >= xres || ny < 0 || ny >= yres {
				continue
			}
			idx := ny*xres + nx
			if !initialized[idx] {
				continue
			}
			sum += data[idx]
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
