package repair

import "github.com/christian-sahlmann/gwyddion-sub013/internal/laplace"

// IterativeLaplace seeds the hole with the PseudoLaplace result, then
// relaxes it with the discrete Laplace smoother (relaxation coefficient
// starting at 0.2), pinning the one-pixel border. It stops when the
// maximum residual falls below 1/1000 of fieldRMS, or after 1000
// iterations (spec.md §4.E). progress, if non-nil, is polled once per
// iteration; returning false cancels the repair, leaving the region
// partially relaxed.
func IterativeLaplace(data []float64, xres, yres int, r Rect, fieldRMS float64, progress func() bool) (iterations int, cancelled bool, err error) {
	if verr := r.validate(xres, yres); verr != nil {
		return 0, false, verr
	}
	if err := PseudoLaplace(data, xres, yres, r); err != nil {
		return 0, false, err
	}

	w := r.XMax - (r.XMin - 1) + 1 // border col on each side included
	h := r.YMax - (r.YMin - 1) + 1
	sub := make([]float64, w*h)
	pinned := make([]bool, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			gc, gr := r.XMin-1+col, r.YMin-1+row
			sub[row*w+col] = at(data, xres, gc, gr)
			pinned[row*w+col] = gc == r.XMin-1 || gc == r.XMax || gr == r.YMin-1 || gr == r.YMax
		}
	}

	tol := fieldRMS / 1000
	iterations, cancelled = laplace.Relax(sub, w, h, pinned, 0.2, 1000, tol, progress)

	for row := 1; row < h-1; row++ {
		for col := 1; col < w-1; col++ {
			gc, gr := r.XMin-1+col, r.YMin-1+row
			set(data, xres, gc, gr, sub[row*w+col])
		}
	}
	return iterations, cancelled, nil
}
