package gwy

import (
	"math/rand"

	"github.com/christian-sahlmann/gwyddion-sub013/internal/mlp"
)

// NeuralNet is the two-layer sigmoid feed-forward network with momentum
// (spec.md §4.I), operating over a sliding window of a training-model
// field to predict a scalar value compared against a training-signal
// field.
type NeuralNet struct {
	net *mlp.Net
}

// NewNeuralNet builds a network with ni inputs, nh hidden units and no
// outputs, weights drawn from U[-0.1, 0.1] by a deterministic RNG seeded
// with 1, for reproducible training (spec.md §4.I).
func NewNeuralNet(ni, nh, no int) *NeuralNet {
	return &NeuralNet{net: mlp.New(ni, nh, no, rand.New(rand.NewSource(1)))}
}

// Forward evaluates the network on a raw (already-scaled) input vector.
func (n *NeuralNet) Forward(input []float64) []float64 { return n.net.Forward(input) }

// TrainStep runs one back-propagation step, returning the L1 norms of
// the output and hidden deltas (spec.md §4.I).
func (n *NeuralNet) TrainStep(input, target []float64, eta, mu float64) (outNorm, hidNorm float64) {
	return n.net.TrainStep(input, target, eta, mu)
}

// WindowSample extracts the (2r+1)x(2r+1) window centred at (col, row)
// from model, min-max scaled to [0,1] using the caller-supplied lo and hi
// (the training model's extremes, spec.md §4.I). Pixels outside the field are clamped to the nearest
// edge pixel.
func WindowSample(model *Field, col, row, r int, lo, hi float64) []float64 {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	out := make([]float64, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c := clampInt(col+dx, 0, model.XRes()-1)
			rr := clampInt(row+dy, 0, model.YRes()-1)
			out = append(out, (model.At(c, rr)-lo)/span)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TrainOnFields iterates steps training passes over random pixels of a
// sliding window on model, comparing against the corresponding pixel of
// signal (spec.md §4.I: "sliding window of the training model field,
// producing a scalar output per central pixel compared to the training
// signal field"). model and signal must share dimensions. rng drives the
// pixel sampling order; pass a fixed-seed RNG for reproducible runs.
// progress, if non-nil, is polled once per step; returning false stops
// training early.
func (n *NeuralNet) TrainOnFields(model, signal *Field, windowRadius int, eta, mu float64, steps int, rng *rand.Rand, progress func() bool) (stepsRun int, cancelled bool) {
	lo, hi := model.Min(), model.Max()
	slo, shi := signal.Min(), signal.Max()
	sspan := shi - slo
	if sspan == 0 {
		sspan = 1
	}

	for step := 0; step < steps; step++ {
		col := rng.Intn(model.XRes())
		row := rng.Intn(model.YRes())
		input := WindowSample(model, col, row, windowRadius, lo, hi)
		target := []float64{(signal.At(col, row) - slo) / sspan}
		n.TrainStep(input, target, eta, mu)
		stepsRun = step + 1
		if progress != nil && !progress() {
			return stepsRun, true
		}
	}
	return stepsRun, false
}

// Evaluate predicts the scalar output for the window centred at (col,
// row) of model, then inversely scales it back into signal's original
// range (spec.md §4.I: "outputs are inversely scaled on evaluation").
func (n *NeuralNet) Evaluate(model *Field, col, row, windowRadius int, signalLo, signalHi float64) float64 {
	lo, hi := model.Min(), model.Max()
	input := WindowSample(model, col, row, windowRadius, lo, hi)
	out := n.Forward(input)[0]
	return signalLo + out*(signalHi-signalLo)
}
