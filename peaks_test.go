package gwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPeaksOnLine(t *testing.T) {
	data := []float64{0, 1, 4, 9, 4, 1, 0, 1, 4, 1, 0}
	l := LineFromSlice(data, float64(len(data)))
	got, err := DetectPeaks(l, PeakBackgroundBilateralMinimum)
	require.NoError(t, err)
	require.Len(t, got, 2)

	xs := make([]float64, l.Res())
	for i := range xs {
		xs[i] = l.X(i)
	}
	want, err := DetectPeaksXY(xs, data, PeakBackgroundBilateralMinimum)
	require.NoError(t, err)
	require.Len(t, want, 2)

	SortPeaksByAbscissa(got)
	SortPeaksByAbscissa(want)
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-9)
		assert.InDelta(t, want[i].Prominence, got[i].Prominence, 1e-9)
	}
}

func TestDetectPeaksXYIgnoresEdgeMaxima(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{5, 1, 0, 1, 5}
	got, err := DetectPeaksXY(xs, ys, PeakBackgroundZero)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTopPeaksByAbscissaWrapper(t *testing.T) {
	all := []Peak{
		{X: 5, Prominence: 1},
		{X: 1, Prominence: 9},
		{X: 3, Prominence: 5},
	}
	top := TopPeaksByAbscissa(all, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 1.0, top[0].X)
	assert.Equal(t, 3.0, top[1].X)
}
