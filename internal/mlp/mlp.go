// Package mlp implements the two-layer sigmoid feed-forward network with
// momentum (spec.md §4.I), used for per-pixel prediction over a sliding
// window.
package mlp

import (
	"math"
	"math/rand"
)

// Net is a two-layer network: ni inputs (+1 bias), nh hidden units (+1
// bias), no outputs.
type Net struct {
	ni, nh, no int

	// nodes holds the last forward pass's activations: input layer
	// (ni+1, index 0 is the bias), hidden layer (nh+1), output layer
	// (no).
	inputs  []float64
	hidden  []float64
	outputs []float64

	// wHidden is (ni+1) x nh: wHidden[a*nh+b] weights input node a into
	// hidden node b. wOut is (nh+1) x no, analogously.
	wHidden, wOut         []float64
	prevDHidden, prevDOut []float64
}

// New builds a network with weights drawn from U[-0.1, 0.1] using rng
// (spec.md §4.I: "deterministic RNG seeded with 1" is the caller's
// responsibility — pass rand.New(rand.NewSource(1)) for reproducible
// training).
func New(ni, nh, no int, rng *rand.Rand) *Net {
	n := &Net{
		ni: ni, nh: nh, no: no,
		inputs:      make([]float64, ni+1),
		hidden:      make([]float64, nh+1),
		outputs:     make([]float64, no),
		wHidden:     make([]float64, (ni+1)*nh),
		wOut:        make([]float64, (nh+1)*no),
		prevDHidden: make([]float64, (ni+1)*nh),
		prevDOut:    make([]float64, (nh+1)*no),
	}
	for i := range n.wHidden {
		n.wHidden[i] = (rng.Float64()*2 - 1) * 0.1
	}
	for i := range n.wOut {
		n.wOut[i] = (rng.Float64()*2 - 1) * 0.1
	}
	return n
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Forward evaluates the network on input (length ni), returning the
// output activations (spec.md §4.I). The returned slice aliases the
// network's internal state and is only valid until the next Forward or
// TrainStep call.
func (n *Net) Forward(input []float64) []float64 {
	n.inputs[0] = 1
	copy(n.inputs[1:], input)

	n.hidden[0] = 1
	for b := 0; b < n.nh; b++ {
		var sum float64
		for a := 0; a <= n.ni; a++ {
			sum += n.inputs[a] * n.wHidden[a*n.nh+b]
		}
		n.hidden[b+1] = sigmoid(sum)
	}

	for b := 0; b < n.no; b++ {
		var sum float64
		for a := 0; a <= n.nh; a++ {
			sum += n.hidden[a] * n.wOut[a*n.no+b]
		}
		n.outputs[b] = sigmoid(sum)
	}
	return n.outputs
}

// TrainStep performs one back-propagation step on sample (input,
// target) with learning rate eta and momentum mu (spec.md §4.I),
// returning the L1 norms of the output and hidden deltas as training
// diagnostics.
func (n *Net) TrainStep(input, target []float64, eta, mu float64) (outNorm, hidNorm float64) {
	n.Forward(input)

	dOut := make([]float64, n.no)
	for j := 0; j < n.no; j++ {
		o := n.outputs[j]
		dOut[j] = o * (1 - o) * (target[j] - o)
		outNorm += math.Abs(dOut[j])
	}

	dHid := make([]float64, n.nh)
	for j := 0; j < n.nh; j++ {
		h := n.hidden[j+1]
		var sum float64
		for k := 0; k < n.no; k++ {
			sum += dOut[k] * n.wOut[(j+1)*n.no+k]
		}
		dHid[j] = h * (1 - h) * sum
		hidNorm += math.Abs(dHid[j])
	}

	for a := 0; a <= n.nh; a++ {
		for b := 0; b < n.no; b++ {
			idx := a*n.no + b
			delta := eta*dOut[b]*n.hidden[a] + mu*n.prevDOut[idx]
			n.wOut[idx] += delta
			n.prevDOut[idx] = delta
		}
	}
	for a := 0; a <= n.ni; a++ {
		for b := 0; b < n.nh; b++ {
			idx := a*n.nh + b
			delta := eta*dHid[b]*n.inputs[a] + mu*n.prevDHidden[idx]
			n.wHidden[idx] += delta
			n.prevDHidden[idx] = delta
		}
	}
	return outNorm, hidNorm
}
