package repair

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xres, yres = 10, 10

func makeField(fill func(col, row int) float64) []float64 {
	data := make([]float64, xres*yres)
	for row := 0; row < yres; row++ {
		for col := 0; col < xres; col++ {
			data[row*xres+col] = fill(col, row)
		}
	}
	return data
}

func assertBorderUntouched(t *testing.T, before, after []float64, r Rect) {
	t.Helper()
	for row := 0; row < yres; row++ {
		for col := 0; col < xres; col++ {
			inHole := col >= r.XMin && col < r.XMax && row >= r.YMin && row < r.YMax
			if !inHole {
				idx := row*xres + col
				assert.Equalf(t, before[idx], after[idx], "pixel (%d,%d) outside hole changed", col, row)
			}
		}
	}
}

func TestHyperbolicBorderPreservation(t *testing.T) {
	before := makeField(func(col, row int) float64 { return float64(col + row) })
	after := append([]float64(nil), before...)
	r := Rect{XMin: 3, YMin: 3, XMax: 7, YMax: 7}
	require.NoError(t, Hyperbolic(after, xres, yres, r))
	assertBorderUntouched(t, before, after, r)
}

func TestHyperbolicRecoversPlane(t *testing.T) {
	before := makeField(func(col, row int) float64 { return float64(2*col + 3*row) })
	after := append([]float64(nil), before...)
	r := Rect{XMin: 3, YMin: 3, XMax: 7, YMax: 7}
	require.NoError(t, Hyperbolic(after, xres, yres, r))
	for row := r.YMin; row < r.YMax; row++ {
		for col := r.XMin; col < r.XMax; col++ {
			idx := row*xres + col
			assert.InDeltaf(t, before[idx], after[idx], 1e-9, "pixel (%d,%d)", col, row)
		}
	}
}

func TestPseudoLaplaceBorderPreservation(t *testing.T) {
	before := makeField(func(col, row int) float64 { return float64(col * row) })
	after := append([]float64(nil), before...)
	r := Rect{XMin: 2, YMin: 2, XMax: 8, YMax: 8}
	require.NoError(t, PseudoLaplace(after, xres, yres, r))
	assertBorderUntouched(t, before, after, r)
}

func TestIterativeLaplaceZeroField(t *testing.T) {
	before := make([]float64, xres*yres)
	after := append([]float64(nil), before...)
	r := Rect{XMin: 1, YMin: 1, XMax: 9, YMax: 9}
	iterations, cancelled, err := IterativeLaplace(after, xres, yres, r, 0, nil)
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.GreaterOrEqual(t, iterations, 0)
	for row := r.YMin; row < r.YMax; row++ {
		for col := r.XMin; col < r.XMax; col++ {
			assert.InDeltaf(t, 0, after[row*xres+col], 1e-12, "pixel (%d,%d)", col, row)
		}
	}
	assertBorderUntouched(t, before, after, r)
}

func TestIterativeLaplaceCancellation(t *testing.T) {
	before := makeField(func(col, row int) float64 { return float64(col - row) })
	after := append([]float64(nil), before...)
	r := Rect{XMin: 2, YMin: 2, XMax: 8, YMax: 8}
	calls := 0
	_, cancelled, err := IterativeLaplace(after, xres, yres, r, 10, func() bool {
		calls++
		return calls < 2
	})
	require.NoError(t, err)
	assert.True(t, cancelled)
}

func TestFractalBorderPreservation(t *testing.T) {
	before := makeField(func(col, row int) float64 { return float64(col + 2*row) })
	after := append([]float64(nil), before...)
	r := Rect{XMin: 3, YMin: 3, XMax: 7, YMax: 7}
	rng := rand.New(rand.NewSource(42))
	require.NoError(t, Fractal(after, xres, yres, r, rng))
	assertBorderUntouched(t, before, after, r)
}

func TestInvalidRectRejected(t *testing.T) {
	data := make([]float64, xres*yres)
	r := Rect{XMin: 0, YMin: 0, XMax: xres, YMax: yres} // no border
	assert.Error(t, Hyperbolic(data, xres, yres, r))
}
