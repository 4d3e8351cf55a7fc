package repair

import (
	"math"
	"math/rand"
)

// Fractal fills the hole with the hyperbolic base plus a fractal-texture
// residual of matching statistics, reconstructed by bilinear sampling
// from a synthetic fractal surface (spec.md §4.E: "bilinear
// reconstruction of missing samples from a generated fractal surface of
// matching statistics"). The texture is generated at a canonical
// power-of-two resolution via midpoint displacement, then the residual is
// detrended against its own four corners so it contributes zero at the
// rectangle's corners and leaves the border untouched.
func Fractal(data []float64, xres, yres int, r Rect, rng *rand.Rand) error {
	if err := r.validate(xres, yres); err != nil {
		return err
	}
	if err := Hyperbolic(data, xres, yres, r); err != nil {
		return err
	}

	w, h := r.XMax-r.XMin, r.YMax-r.YMin
	side := nextPow2(maxInt(w, h)) + 1
	surface := midpointDisplacement(side, rng)

	mean, std := borderStats(data, xres, r)
	tmean, tstd := meanStd(surface)
	if tstd == 0 {
		tstd = 1
	}

	residual := make([]float64, w*h)
	for row := 0; row < h; row++ {
		fy := float64(row) / float64(maxInt(h-1, 1)) * float64(side-1)
		for col := 0; col < w; col++ {
			fx := float64(col) / float64(maxInt(w-1, 1)) * float64(side-1)
			v := bilinearSample(surface, side, fx, fy)
			residual[row*w+col] = mean + (v-tmean)/tstd*std
		}
	}
	c00, c10 := residual[0], residual[w-1]
	c01, c11 := residual[(h-1)*w], residual[(h-1)*w+w-1]
	for row := 0; row < h; row++ {
		ty := float64(row) / float64(maxInt(h-1, 1))
		for col := 0; col < w; col++ {
			tx := float64(col) / float64(maxInt(w-1, 1))
			corner := (c00*(1-tx)+c10*tx)*(1-ty) + (c01*(1-tx)+c11*tx)*ty
			residual[row*w+col] -= corner
		}
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			gc, gr := r.XMin+col, r.YMin+row
			v := at(data, xres, gc, gr) + residual[row*w+col]
			set(data, xres, gc, gr, v)
		}
	}
	return nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func meanStd(v []float64) (mean, std float64) {
	for _, x := range v {
		mean += x
	}
	mean /= float64(len(v))
	for _, x := range v {
		d := x - mean
		std += d * d
	}
	std = math.Sqrt(std / float64(len(v)))
	return
}

func borderStats(data []float64, xres int, r Rect) (mean, std float64) {
	border := borderPixels(r)
	vals := make([]float64, len(border))
	for i, b := range border {
		vals[i] = at(data, xres, b.col, b.row)
	}
	return meanStd(vals)
}

// midpointDisplacement generates a (side x side) fractal surface (side =
// 2^k+1) via the classic diamond-square algorithm, seeded by rng.
func midpointDisplacement(side int, rng *rand.Rand) []float64 {
	g := make([]float64, side*side)
	at := func(x, y int) float64 { return g[y*side+x] }
	set := func(x, y int, v float64) { g[y*side+x] = v }

	set(0, 0, rng.NormFloat64())
	set(side-1, 0, rng.NormFloat64())
	set(0, side-1, rng.NormFloat64())
	set(side-1, side-1, rng.NormFloat64())

	scale := 1.0
	for step := side - 1; step > 1; step /= 2 {
		half := step / 2
		for y := 0; y < side-1; y += step {
			for x := 0; x < side-1; x += step {
				avg := (at(x, y) + at(x+step, y) + at(x, y+step) + at(x+step, y+step)) / 4
				set(x+half, y+half, avg+scale*rng.NormFloat64())
			}
		}
		for y := 0; y < side; y += half {
			for x := ((y/half + 1) % 2) * half; x < side; x += step {
				var sum float64
				var n int
				if x-half >= 0 {
					sum += at(x-half, y)
					n++
				}
				if x+half < side {
					sum += at(x+half, y)
					n++
				}
				if y-half >= 0 {
					sum += at(x, y-half)
					n++
				}
				if y+half < side {
					sum += at(x, y+half)
					n++
				}
				set(x, y, sum/float64(n)+scale*rng.NormFloat64())
			}
		}
		scale *= 0.5
	}
	return g
}

func bilinearSample(g []float64, side int, fx, fy float64) float64 {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1, y1 := x0+1, y0+1
	if x1 > side-1 {
		x1 = side - 1
	}
	if y1 > side-1 {
		y1 = side - 1
	}
	tx, ty := fx-float64(x0), fy-float64(y0)
	v00 := g[y0*side+x0]
	v10 := g[y0*side+x1]
	v01 := g[y1*side+x0]
	v11 := g[y1*side+x1]
	top := v00*(1-tx) + v10*tx
	bot := v01*(1-tx) + v11*tx
	return top*(1-ty) + bot*ty
}
