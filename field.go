package gwy

import "math"

// Field is a dense 2-D sample grid: xres*yres 64-bit floats in row-major
// order, with real-world extents, offsets and units (spec.md §3).
type Field struct {
	Notifier

	xres, yres int
	xreal      float64
	yreal      float64
	xoff, yoff float64
	data       []float64
	mask       []bool // optional per-pixel mask; nil means "no mask"
	lateral    Unit
	value      Unit
}

// NewField allocates a zero-filled Field of the given sample dimensions
// and real extents.
func NewField(xres, yres int, xreal, yreal float64) *Field {
	if xres <= 0 || yres <= 0 {
		badArgument("NewField: non-positive dimensions %d x %d", xres, yres)
	}
	if xreal <= 0 || yreal <= 0 {
		badArgument("NewField: non-positive extents %g x %g", xreal, yreal)
	}
	return &Field{
		xres:  xres,
		yres:  yres,
		xreal: xreal,
		yreal: yreal,
		data:  make([]float64, xres*yres),
	}
}

// Duplicate returns a deep copy of f, including mask, units and offsets.
func (f *Field) Duplicate() *Field {
	d := &Field{
		xres: f.xres, yres: f.yres,
		xreal: f.xreal, yreal: f.yreal,
		xoff: f.xoff, yoff: f.yoff,
		lateral: f.lateral, value: f.value,
		data: append([]float64(nil), f.data...),
	}
	if f.mask != nil {
		d.mask = append([]bool(nil), f.mask...)
	}
	return d
}

// XRes, YRes return the sample dimensions.
func (f *Field) XRes() int { return f.xres }
func (f *Field) YRes() int { return f.yres }

// XReal, YReal return the real-world extents.
func (f *Field) XReal() float64 { return f.xreal }
func (f *Field) YReal() float64 { return f.yreal }

// XOff, YOff return the offsets. Offsets are pure metadata: algorithms use
// xreal/xres as pixel pitch, never the offset (spec.md §3).
func (f *Field) XOff() float64 { return f.xoff }
func (f *Field) YOff() float64 { return f.yoff }

// SetOffsets sets the field's metadata offsets.
func (f *Field) SetOffsets(xoff, yoff float64) {
	f.xoff, f.yoff = xoff, yoff
}

// DX, DY return the pixel pitch (xreal/xres, yreal/yres).
func (f *Field) DX() float64 { return f.xreal / float64(f.xres) }
func (f *Field) DY() float64 { return f.yreal / float64(f.yres) }

// LateralUnit, ValueUnit access the field's SI units.
func (f *Field) LateralUnit() Unit    { return f.lateral }
func (f *Field) ValueUnit() Unit      { return f.value }
func (f *Field) SetLateralUnit(u Unit) { f.lateral = u }
func (f *Field) SetValueUnit(u Unit)   { f.value = u }

// Data returns the borrowed row-major sample buffer. Callers must not
// mutate a Field while any algorithm reads it (spec.md §5); this borrow is
// read/write for the owner only.
func (f *Field) Data() []float64 { return f.data }

// At, Set access a single pixel by (col, row).
func (f *Field) At(col, row int) float64 {
	f.checkBounds(col, row)
	return f.data[row*f.xres+col]
}

func (f *Field) Set(col, row int, v float64) {
	f.checkBounds(col, row)
	f.data[row*f.xres+col] = v
}

func (f *Field) checkBounds(col, row int) {
	if col < 0 || col >= f.xres || row < 0 || row >= f.yres {
		badArgument("Field: index (%d,%d) out of bounds %dx%d", col, row, f.xres, f.yres)
	}
}

// HasMask reports whether the field carries a per-pixel mask.
func (f *Field) HasMask() bool { return f.mask != nil }

// EnsureMask allocates an all-false mask if none exists and returns the
// borrowed mask buffer, row-major like Data.
func (f *Field) EnsureMask() []bool {
	if f.mask == nil {
		f.mask = make([]bool, f.xres*f.yres)
	}
	return f.mask
}

// Mask returns the borrowed mask buffer, or nil if the field has none.
func (f *Field) Mask() []bool { return f.mask }

// ClearMask removes the field's mask.
func (f *Field) ClearMask() { f.mask = nil }

// Fill sets every sample to v and emits "data-changed".
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
	f.Emit("data-changed")
}

// Min returns the minimum sample value. Panics on a zero-sample field,
// which cannot occur given NewField's positive-dimension invariant.
func (f *Field) Min() float64 {
	m := f.data[0]
	for _, v := range f.data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the maximum sample value.
func (f *Field) Max() float64 {
	m := f.data[0]
	for _, v := range f.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Avg returns the arithmetic mean of all samples.
func (f *Field) Avg() float64 {
	var sum float64
	for _, v := range f.data {
		sum += v
	}
	return sum / float64(len(f.data))
}

// RMS returns the root-mean-square of (sample - Avg()).
func (f *Field) RMS() float64 {
	avg := f.Avg()
	var sum float64
	for _, v := range f.data {
		d := v - avg
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(f.data)))
}

// AreaCopy copies the rectangle [x0,x1)x[y0,y1) of f into a newly
// allocated Field with the proportional real-world extent.
func (f *Field) AreaCopy(x0, y0, x1, y1 int) *Field {
	if x0 < 0 || y0 < 0 || x1 > f.xres || y1 > f.yres || x0 >= x1 || y0 >= y1 {
		badArgument("AreaCopy: invalid rectangle (%d,%d)-(%d,%d) in %dx%d", x0, y0, x1, y1, f.xres, f.yres)
	}
	w, h := x1-x0, y1-y0
	out := NewField(w, h, f.DX()*float64(w), f.DY()*float64(h))
	out.lateral, out.value = f.lateral, f.value
	for row := 0; row < h; row++ {
		copy(out.data[row*w:(row+1)*w], f.data[(row+y0)*f.xres+x0:(row+y0)*f.xres+x0+w])
	}
	return out
}

// Resample returns a new Field of the given sample dimensions covering the
// same real extent, using bilinear interpolation.
func (f *Field) Resample(xres, yres int) *Field {
	if xres <= 0 || yres <= 0 {
		badArgument("Resample: non-positive dimensions %d x %d", xres, yres)
	}
	out := NewField(xres, yres, f.xreal, f.yreal)
	out.xoff, out.yoff = f.xoff, f.yoff
	out.lateral, out.value = f.lateral, f.value
	for row := 0; row < yres; row++ {
		fy := float64(row) / float64(yres-orOne(yres)) * float64(f.yres-1)
		if yres == 1 {
			fy = 0
		}
		for col := 0; col < xres; col++ {
			fx := float64(col) / float64(xres-orOne(xres)) * float64(f.xres-1)
			if xres == 1 {
				fx = 0
			}
			out.data[row*xres+col] = f.bilinear(fx, fy)
		}
	}
	return out
}

func orOne(n int) int {
	if n <= 1 {
		return 0
	}
	return 1
}

func (f *Field) bilinear(fx, fy float64) float64 {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1, y1 := x0+1, y0+1
	if x1 > f.xres-1 {
		x1 = f.xres - 1
	}
	if y1 > f.yres-1 {
		y1 = f.yres - 1
	}
	tx, ty := fx-float64(x0), fy-float64(y0)
	v00 := f.At(x0, y0)
	v10 := f.At(x1, y0)
	v01 := f.At(x0, y1)
	v11 := f.At(x1, y1)
	top := v00*(1-tx) + v10*tx
	bot := v01*(1-tx) + v11*tx
	return top*(1-ty) + bot*ty
}

// Row returns a copy of the given row, suitable for passing into the 1-D
// DFT/window/peak routines.
func (f *Field) Row(row int) []float64 {
	if row < 0 || row >= f.yres {
		badArgument("Row: index %d out of bounds", row)
	}
	out := make([]float64, f.xres)
	copy(out, f.data[row*f.xres:(row+1)*f.xres])
	return out
}

// SetRow overwrites the given row from src (len(src) must equal XRes()).
func (f *Field) SetRow(row int, src []float64) {
	if row < 0 || row >= f.yres {
		badArgument("SetRow: index %d out of bounds", row)
	}
	if len(src) != f.xres {
		badArgument("SetRow: length %d != xres %d", len(src), f.xres)
	}
	copy(f.data[row*f.xres:(row+1)*f.xres], src)
}

// Column returns a copy of the given column.
func (f *Field) Column(col int) []float64 {
	if col < 0 || col >= f.xres {
		badArgument("Column: index %d out of bounds", col)
	}
	out := make([]float64, f.yres)
	for row := 0; row < f.yres; row++ {
		out[row] = f.data[row*f.xres+col]
	}
	return out
}

// SetColumn overwrites the given column from src (len(src) must equal YRes()).
func (f *Field) SetColumn(col int, src []float64) {
	if col < 0 || col >= f.xres {
		badArgument("SetColumn: index %d out of bounds", col)
	}
	if len(src) != f.yres {
		badArgument("SetColumn: length %d != yres %d", len(src), f.yres)
	}
	for row := 0; row < f.yres; row++ {
		f.data[row*f.xres+col] = src[row]
	}
}
