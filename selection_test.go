package gwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionPointAddGet(t *testing.T) {
	s := NewSelection(SelPoint, 2)
	i := s.Add(1, 2)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, []float64{1, 2}, s.Get(0))
}

func TestSelectionCapacityPanics(t *testing.T) {
	s := NewSelection(SelPoint, 1)
	s.Add(0, 0)
	assert.Panics(t, func() { s.Add(1, 1) })
}

func TestSelectionWrongArityPanics(t *testing.T) {
	s := NewSelection(SelRectangle, 1)
	assert.Panics(t, func() { s.Add(1, 2) })
}

func TestSelectionRemoveShiftsDown(t *testing.T) {
	s := NewSelection(SelPoint, 3)
	s.Add(1, 1)
	s.Add(2, 2)
	s.Add(3, 3)
	s.Remove(0)
	require.Equal(t, 2, s.Count())
	assert.Equal(t, []float64{2, 2}, s.Get(0))
	assert.Equal(t, []float64{3, 3}, s.Get(1))
}

func TestSelectionMovePoint(t *testing.T) {
	s := NewSelection(SelPoint, 1)
	s.Add(1, 1)
	s.Move(0, 2, -1)
	assert.Equal(t, []float64{3, 0}, s.Get(0))
}

func TestSelectionMoveRectangleShiftsAllPairs(t *testing.T) {
	s := NewSelection(SelRectangle, 1)
	s.Add(0, 0, 10, 10)
	s.Move(0, 1, 1)
	assert.Equal(t, []float64{1, 1, 11, 11}, s.Get(0))
}

func TestSelectionPathLifecycle(t *testing.T) {
	s := NewSelection(SelPath, 2)
	knots := [][2]float64{{0, 0}, {1, 1}, {2, 0}}
	i := s.AddPath(knots, true, CatmullRomSlackness)
	assert.Equal(t, 0, i)

	got, closed, slack := s.GetPath(0)
	assert.Equal(t, knots, got)
	assert.True(t, closed)
	assert.Equal(t, CatmullRomSlackness, slack)

	assert.Panics(t, func() { s.Add(1, 2) })
	assert.Panics(t, func() { s.Get(0) })
}

func TestSelectionPathMoveTranslatesKnots(t *testing.T) {
	s := NewSelection(SelPath, 1)
	s.AddPath([][2]float64{{0, 0}, {1, 0}}, false, 0)
	s.Move(0, 5, 5)
	knots, _, _ := s.GetPath(0)
	assert.Equal(t, [][2]float64{{5, 5}, {6, 5}}, knots)
}

func TestSelectionCropKeepsOnlyFullyInside(t *testing.T) {
	s := NewSelection(SelPoint, 3)
	s.Add(1, 1)
	s.Add(5, 5)
	s.Add(20, 20)
	s.Crop(0, 0, 10, 10)
	require.Equal(t, 2, s.Count())
	assert.Equal(t, []float64{1, 1}, s.Get(0))
	assert.Equal(t, []float64{5, 5}, s.Get(1))
}

func TestSelectionFilterInPlaceReindexes(t *testing.T) {
	s := NewSelection(SelPoint, 4)
	s.Add(0, 0)
	s.Add(1, 1)
	s.Add(2, 2)
	s.Add(3, 3)
	s.FilterInPlace(func(i int) bool { return i%2 == 0 })
	require.Equal(t, 2, s.Count())
	assert.Equal(t, []float64{0, 0}, s.Get(0))
	assert.Equal(t, []float64{2, 2}, s.Get(1))
}
