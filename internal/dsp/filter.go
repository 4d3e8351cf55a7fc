package dsp

// InterpPolicy selects how a weights Line of different length than the
// half-spectrum is resampled onto it (spec.md §4.B: "interpolation policy
// for resampling").
type InterpPolicy int

const (
	InterpLinear InterpPolicy = iota
	InterpNearest
)

// resampleWeights stretches/shrinks w to exactly n samples.
func resampleWeights(w []float64, n int, policy InterpPolicy) []float64 {
	if len(w) == n {
		return w
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = w[0]
		return out
	}
	for i := 0; i < n; i++ {
		fx := float64(i) / float64(n-1) * float64(len(w)-1)
		switch policy {
		case InterpNearest:
			idx := int(fx + 0.5)
			if idx > len(w)-1 {
				idx = len(w) - 1
			}
			out[i] = w[idx]
		default:
			x0 := int(fx)
			x1 := x0 + 1
			if x1 > len(w)-1 {
				x1 = len(w) - 1
			}
			t := fx - float64(x0)
			out[i] = w[x0]*(1-t) + w[x1]*t
		}
	}
	return out
}

// FilterRow applies the 1-D FFT band filter (spec.md §4.B) to one row (or
// column) of a field: window with identity, forward DFT, scale by a
// band-gain profile over the half-spectrum (mirrored identically onto the
// upper half), backward DFT, keep the real part.
//
// weights is interpreted over the half-spectrum k=0..n/2; if its length
// differs from n/2+1 it is resampled first using policy. The filter is
// information-preserving only when weights are all 1; otherwise it is a
// linear band gate.
func FilterRow(row []float64, weights []float64, policy InterpPolicy) ([]float64, error) {
	n := len(row)
	half := n/2 + 1
	w := resampleWeights(weights, half, policy)

	data := append([]float64(nil), row...)
	Apply(WindowNone, data) // "window with a rectangular window (identity)"

	re := make([]float64, n)
	copy(re, data)
	im := make([]float64, n)
	fre := make([]float64, n)
	fim := make([]float64, n)
	if err := Transform(Forward, n, 1, re, im, 1, fre, fim); err != nil {
		return nil, err
	}

	for k := 0; k < n; k++ {
		idx := k
		if idx >= half {
			idx = n - k
			if idx >= half {
				idx = half - 1
			}
		}
		g := w[idx]
		fre[k] *= g
		fim[k] *= g
	}

	bre := make([]float64, n)
	bim := make([]float64, n)
	if err := Transform(Backward, n, 1, fre, fim, 1, bre, bim); err != nil {
		return nil, err
	}
	return bre, nil
}
