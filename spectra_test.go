package gwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpectraCollectionAddAt(t *testing.T) {
	c := NewSpectraCollection("curves", NewUnit(Meter, 1))
	l := NewLine(2, 1)
	i := c.Add(1, 2, l)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, c.Len())

	x, y, line := c.At(0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
	assert.Same(t, l, line)
}

func TestSpectraCollectionRemoveAt(t *testing.T) {
	c := NewSpectraCollection("curves", Dimensionless)
	c.Add(0, 0, NewLine(1, 1))
	c.Add(1, 1, NewLine(1, 1))
	c.RemoveAt(0)
	require.Equal(t, 1, c.Len())
	x, y, _ := c.At(0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)
}

func TestSpectraCollectionNearest(t *testing.T) {
	c := NewSpectraCollection("curves", Dimensionless)
	c.Add(0, 0, NewLine(1, 1))
	c.Add(10, 10, NewLine(1, 1))
	c.Add(1, 1, NewLine(1, 1))

	idx, ok := c.Nearest(1.1, 0.9)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestSpectraCollectionNearestEmpty(t *testing.T) {
	c := NewSpectraCollection("curves", Dimensionless)
	_, ok := c.Nearest(0, 0)
	assert.False(t, ok)
}

func TestSpectraCollectionOutOfBoundsPanics(t *testing.T) {
	c := NewSpectraCollection("curves", Dimensionless)
	assert.Panics(t, func() { c.At(0) })
	assert.Panics(t, func() { c.RemoveAt(0) })
}
