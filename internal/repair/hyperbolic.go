package repair

// Hyperbolic fills the hole by blending two 1-D interpolants (one along
// each axis) anchored on the region's two opposing border pixels, with
// weight 1/t + 1/(1-t) favouring whichever axis's border is nearer
// (spec.md §4.E).
func Hyperbolic(data []float64, xres, yres int, r Rect) error {
	if err := r.validate(xres, yres); err != nil {
		return err
	}
	for row := r.YMin; row < r.YMax; row++ {
		for col := r.XMin; col < r.XMax; col++ {
			set(data, xres, col, row, hyperbolicPixel(data, xres, r, col, row))
		}
	}
	return nil
}

func hyperbolicPixel(data []float64, xres int, r Rect, col, row int) float64 {
	left := at(data, xres, r.XMin-1, row)
	right := at(data, xres, r.XMax, row)
	top := at(data, xres, col, r.YMin-1)
	bottom := at(data, xres, col, r.YMax)

	tx := float64(col-r.XMin+1) / float64(r.XMax-r.XMin+1)
	ty := float64(row-r.YMin+1) / float64(r.YMax-r.YMin+1)

	interpX := left + (right-left)*tx
	interpY := top + (bottom-top)*ty
	wx := 1/tx + 1/(1-tx)
	wy := 1/ty + 1/(1-ty)
	return (interpX*wx + interpY*wy) / (wx + wy)
}
