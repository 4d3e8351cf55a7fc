package mlp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardOutputsInUnitInterval(t *testing.T) {
	net := New(2, 3, 1, rand.New(rand.NewSource(1)))
	out := net.Forward([]float64{0.3, 0.8})
	require.Len(t, out, 1)
	assert.GreaterOrEqual(t, out[0], 0.0)
	assert.LessOrEqual(t, out[0], 1.0)
}

func TestDeterministicInitialisation(t *testing.T) {
	a := New(2, 4, 1, rand.New(rand.NewSource(1)))
	b := New(2, 4, 1, rand.New(rand.NewSource(1)))
	input := []float64{0.5, 0.2}
	assert.Equal(t, a.Forward(input), b.Forward(input))
}

func TestXOROverfit(t *testing.T) {
	net := New(2, 4, 1, rand.New(rand.NewSource(1)))
	samples := [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := []float64{0, 1, 1, 0}

	rng := rand.New(rand.NewSource(7))
	var lastOutNorm float64
	for step := 0; step < 5000; step++ {
		i := rng.Intn(len(samples))
		outNorm, _ := net.TrainStep(samples[i][:], []float64{targets[i]}, 0.5, 0.3)
		lastOutNorm = outNorm
	}
	_ = lastOutNorm

	var maxErr float64
	for i, s := range samples {
		got := net.Forward(s[:])[0]
		err := got - targets[i]
		if err < 0 {
			err = -err
		}
		if err > maxErr {
			maxErr = err
		}
	}
	assert.Less(t, maxErr, 0.05)
}
