package gwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyFitAndSubtractPlane(t *testing.T) {
	xres, yres := 16, 16
	f := NewField(xres, yres, float64(xres), float64(yres))
	for row := 0; row < yres; row++ {
		for col := 0; col < xres; col++ {
			sx := -1 + 2*float64(col)/float64(xres-1)
			sy := -1 + 2*float64(row)/float64(yres-1)
			f.Set(col, row, 1+2*sx+3*sy)
		}
	}
	basis := IndependentDegreeBasis(1, 1)

	coeffs, err := PolyFit(f, basis, PolyMaskIgnore)
	require.NoError(t, err)
	require.Len(t, coeffs, 4)
	assert.InDelta(t, 1.0, coeffs[0], 1e-6)

	PolySubtract(f, basis, coeffs)
	for _, v := range f.Data() {
		assert.InDelta(t, 0, v, 1e-6)
	}
}

func TestPolyBackgroundReconstructsFittedSurface(t *testing.T) {
	xres, yres := 8, 8
	f := NewField(xres, yres, float64(xres), float64(yres))
	for row := 0; row < yres; row++ {
		for col := 0; col < xres; col++ {
			f.Set(col, row, float64(col))
		}
	}
	basis := TotalDegreeBasis(1)
	coeffs, err := PolyFit(f, basis, PolyMaskIgnore)
	require.NoError(t, err)

	bg := PolyBackground(xres, yres, f.XReal(), f.YReal(), basis, coeffs)
	for row := 0; row < yres; row++ {
		for col := 0; col < xres; col++ {
			assert.InDelta(t, f.At(col, row), bg.At(col, row), 1e-6)
		}
	}
}

func TestPolyFitExcludeMask(t *testing.T) {
	xres, yres := 8, 8
	f := NewField(xres, yres, float64(xres), float64(yres))
	for row := 0; row < yres; row++ {
		for col := 0; col < xres; col++ {
			f.Set(col, row, 5)
		}
	}
	f.EnsureMask()[0] = true
	f.Set(0, 0, 1000)

	basis := IndependentDegreeBasis(1, 1)
	coeffs, err := PolyFit(f, basis, PolyMaskExclude)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, coeffs[0], 1e-6)
}
