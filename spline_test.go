package gwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePathOpenEndpoints(t *testing.T) {
	knots := []SplinePoint{{X: 0, Y: 0}, {X: 1, Y: 3}, {X: 2, Y: 0}, {X: 4, Y: 1}}
	out := SamplePath(knots, CatmullRomSlackness, false, DefaultSplinePixelTolerance)
	require.NotEmpty(t, out)
	assert.Equal(t, knots[0], out[0])
	assert.Equal(t, knots[len(knots)-1], out[len(out)-1])
}

func TestSamplePathClosedIsCyclic(t *testing.T) {
	knots := []SplinePoint{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 0}, {X: 2, Y: -2}}
	out := SamplePath(knots, CatmullRomSlackness, true, DefaultSplinePixelTolerance)
	require.NotEmpty(t, out)
	assert.InDelta(t, out[0].X, out[len(out)-1].X, 1e-9)
	assert.InDelta(t, out[0].Y, out[len(out)-1].Y, 1e-9)
}

func TestSamplePathZeroSlacknessIsStraight(t *testing.T) {
	knots := []SplinePoint{{X: 0, Y: 0}, {X: 10, Y: 0}}
	out := SamplePath(knots, 0, false, 0.01)
	for _, p := range out {
		assert.InDelta(t, 0, p.Y, 1e-9)
	}
}
