package gwy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRepairField() *Field {
	f := NewField(10, 10, 10, 10)
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			f.Set(col, row, float64(2*col+3*row))
		}
	}
	return f
}

func TestRepairHyperbolicRecoversPlaneAndEmits(t *testing.T) {
	f := makeRepairField()
	before := f.Duplicate()
	fired := false
	f.Subscribe(func(string) { fired = true })

	r := RepairRect{XMin: 3, YMin: 3, XMax: 7, YMax: 7}
	require.NoError(t, RepairHyperbolic(f, r))
	assert.True(t, fired)
	for row := r.YMin; row < r.YMax; row++ {
		for col := r.XMin; col < r.XMax; col++ {
			assert.InDeltaf(t, before.At(col, row), f.At(col, row), 1e-9, "(%d,%d)", col, row)
		}
	}
}

func TestRepairPseudoLaplaceBorderUntouched(t *testing.T) {
	f := makeRepairField()
	before := append([]float64(nil), f.Data()...)
	r := RepairRect{XMin: 2, YMin: 2, XMax: 8, YMax: 8}
	require.NoError(t, RepairPseudoLaplace(f, r))
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			inHole := col >= r.XMin && col < r.XMax && row >= r.YMin && row < r.YMax
			if !inHole {
				assert.Equal(t, before[row*10+col], f.At(col, row))
			}
		}
	}
}

func TestRepairIterativeLaplaceConverges(t *testing.T) {
	f := makeRepairField()
	r := RepairRect{XMin: 2, YMin: 2, XMax: 8, YMax: 8}
	iterations, cancelled, err := RepairIterativeLaplace(f, r, nil)
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.GreaterOrEqual(t, iterations, 0)
}

func TestRepairFractalBorderUntouched(t *testing.T) {
	f := makeRepairField()
	before := append([]float64(nil), f.Data()...)
	r := RepairRect{XMin: 3, YMin: 3, XMax: 7, YMax: 7}
	rng := rand.New(rand.NewSource(42))
	require.NoError(t, RepairFractal(f, r, rng))
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			inHole := col >= r.XMin && col < r.XMax && row >= r.YMin && row < r.YMax
			if !inHole {
				assert.Equal(t, before[row*10+col], f.At(col, row))
			}
		}
	}
}

func TestRepairInvalidRectReturnsError(t *testing.T) {
	f := NewField(4, 4, 4, 4)
	r := RepairRect{XMin: 0, YMin: 0, XMax: 4, YMax: 4}
	assert.Error(t, RepairHyperbolic(f, r))
}
