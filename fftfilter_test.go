package gwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFTFilter1DIdentityPreservesRows(t *testing.T) {
	f := NewField(8, 2, 8, 2)
	f.SetRow(0, []float64{1, 4, 2, 8, 5, 7, 3, 6})
	f.SetRow(1, []float64{2, 2, 2, 2, 2, 2, 2, 2})

	weights := NewLine(5, 1)
	for i := range weights.Data() {
		weights.Data()[i] = 1
	}

	out, err := FFTFilter1D(f, weights, FilterRows, InterpLinear)
	require.NoError(t, err)
	for row := 0; row < 2; row++ {
		for col := 0; col < 8; col++ {
			assert.InDeltaf(t, f.At(col, row), out.At(col, row), 1e-9, "(%d,%d)", col, row)
		}
	}
	assert.Equal(t, 1.0, f.At(0, 0)) // original untouched sentinel
}

func TestFFTFilter1DColumnsDoesNotMutateInput(t *testing.T) {
	f := NewField(2, 8, 2, 8)
	for row := 0; row < 8; row++ {
		f.Set(0, row, float64(row))
		f.Set(1, row, float64(row*2))
	}
	before := append([]float64(nil), f.Data()...)

	weights := NewLine(5, 1) // all-zero: suppresses everything
	out, err := FFTFilter1D(f, weights, FilterColumns, InterpNearest)
	require.NoError(t, err)

	assert.Equal(t, before, f.Data())
	for _, v := range out.Data() {
		assert.InDelta(t, 0, v, 1e-9)
	}
}
