package repair

// PseudoLaplace fills the hole by accumulating, for every interior pixel,
// a 1/(i^2+j^2)-weighted contribution from every pixel on the region's
// one-pixel-wide border (spec.md §4.E). O(area*perimeter), but every
// pixel is independent of every other — trivially parallel, though the
// CORE's single-threaded contract (spec.md §5) does not require it here.
func PseudoLaplace(data []float64, xres, yres int, r Rect) error {
	if err := r.validate(xres, yres); err != nil {
		return err
	}
	border := borderPixels(r)
	for row := r.YMin; row < r.YMax; row++ {
		for col := r.XMin; col < r.XMax; col++ {
			var sum, wsum float64
			for _, b := range border {
				di := float64(col - b.col)
				dj := float64(row - b.row)
				w := 1 / (di*di + dj*dj)
				sum += w * at(data, xres, b.col, b.row)
				wsum += w
			}
			set(data, xres, col, row, sum/wsum)
		}
	}
	return nil
}

type borderPixel struct{ col, row int }

// borderPixels enumerates the one-pixel-wide ring just outside
// [XMin,XMax)x[YMin,YMax), each pixel listed once.
func borderPixels(r Rect) []borderPixel {
	var out []borderPixel
	top, bottom := r.YMin-1, r.YMax
	for col := r.XMin - 1; col <= r.XMax; col++ {
		out = append(out, borderPixel{col, top}, borderPixel{col, bottom})
	}
	for row := r.YMin; row < r.YMax; row++ {
		out = append(out, borderPixel{r.XMin - 1, row}, borderPixel{r.XMax, row})
	}
	return out
}
