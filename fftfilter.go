package gwy

import "github.com/christian-sahlmann/gwyddion-sub013/internal/dsp"

// FFTFilterDirection selects whether the 1-D FFT filter (spec.md §4.B)
// runs along rows or columns of a Field.
type FFTFilterDirection int

const (
	FilterRows FFTFilterDirection = iota
	FilterColumns
)

// InterpPolicy selects how the weights Line is resampled onto the
// half-spectrum when its length does not already match it.
type InterpPolicy = dsp.InterpPolicy

const (
	InterpLinear  = dsp.InterpLinear
	InterpNearest = dsp.InterpNearest
)

// FFTFilter1D applies the 1-D spectral line filter (spec.md §4.B) to
// every row (or column) of field, using weights as a band-gain profile
// over the half-spectrum. It returns a new Field; the input is untouched.
func FFTFilter1D(field *Field, weights *Line, direction FFTFilterDirection, policy InterpPolicy) (*Field, error) {
	out := field.Duplicate()
	n := field.XRes()
	count := field.YRes()
	get, set := out.Row, out.SetRow
	if direction == FilterColumns {
		n = field.YRes()
		count = field.XRes()
		get, set = out.Column, out.SetColumn
	}
	_ = n
	for i := 0; i < count; i++ {
		row := get(i)
		filtered, err := dsp.FilterRow(row, weights.Data(), policy)
		if err != nil {
			return nil, err
		}
		set(i, filtered)
	}
	out.Emit("data-changed")
	return out, nil
}
