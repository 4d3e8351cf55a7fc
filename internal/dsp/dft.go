// Package dsp implements the mixed-radix in-place DFT kernel and its
// window functions (spec.md §4.A) plus the 1-D FFT band filter built on
// top of it (spec.md §4.B).
package dsp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Direction selects the transform direction. Both directions are
// normalised by 1/sqrt(n) so the pair is unitary and self-inverse up to
// conjugation (spec.md §4.A).
type Direction int

const (
	Forward Direction = iota
	Backward
)

// allowedRadices lists the factors the mixed-radix kernel supports, in
// the greedy preference order spec.md §4.A mandates: "repeatedly pick the
// largest factor among {4, 5, 2, 3, 7} that divides the remaining length."
var allowedRadices = [...]int{4, 5, 2, 3, 7}

// scratch is the package-level DFT working buffer: lazily grown, never
// shrunk, amortised O(1) reuse across calls (spec.md §5's "only
// persistent process-wide buffer"). The CORE's single-threaded,
// one-writer-no-concurrent-readers contract (spec.md §5) is what makes
// reusing it safe without a lock.
var scratch []complex128

func scratchOfSize(n int) []complex128 {
	if cap(scratch) < n {
		scratch = make([]complex128, n)
	}
	return scratch[:n]
}

// chooseRadix returns the first value in allowedRadices (in its
// preference order) dividing n, or 0 if none does (n contains a prime
// factor outside {2,3,5,7}).
func chooseRadix(n int) int {
	for _, p := range allowedRadices {
		if n%p == 0 {
			return p
		}
	}
	return 0
}

// Supported reports whether n's prime factorisation uses only {2,3,5,7}.
func Supported(n int) bool {
	for n > 1 {
		p := chooseRadix(n)
		if p == 0 {
			return false
		}
		n /= p
	}
	return true
}

// UnsupportedSizeError is returned by Transform when n contains a prime
// factor outside {2, 3, 5, 7}.
type UnsupportedSizeError struct {
	N int
}

func (e *UnsupportedSizeError) Error() string {
	return fmt.Sprintf("dsp: unsupported DFT size %d", e.N)
}

// dftRecursive computes the unnormalised forward DFT (kernel e^{-2pi i
// nk/N}) of x via the standard decimation-in-time mixed-radix
// decomposition: split x into p subsequences by stride p (x_r[j] =
// x[r+p*j]), recursively transform each modulo-m subsequence (m = N/p),
// then combine with twiddle factors e^{-2pi i rk/N}. This is the
// "repeatedly pick the largest factor... between passes input is
// shuffled and twiddled" structure of spec.md §4.A expressed recursively
// instead of as an explicit pass loop.
func dftRecursive(x []complex128) ([]complex128, error) {
	n := len(x)
	if n == 1 {
		return x, nil
	}
	p := chooseRadix(n)
	if p == 0 {
		return nil, &UnsupportedSizeError{N: n}
	}
	m := n / p
	sub := make([][]complex128, p)
	for r := 0; r < p; r++ {
		s := make([]complex128, m)
		for j := 0; j < m; j++ {
			s[j] = x[r+p*j]
		}
		y, err := dftRecursive(s)
		if err != nil {
			return nil, err
		}
		sub[r] = y
	}
	out := make([]complex128, n)
	invN := -2 * math.Pi / float64(n)
	for k := 0; k < n; k++ {
		km := k % m
		var sum complex128
		for r := 0; r < p; r++ {
			sin, cos := math.Sincos(invN * float64(r*k))
			tw := complex(cos, sin)
			sum += tw * sub[r][km]
		}
		out[k] = sum
	}
	return out, nil
}

// Transform runs the mixed-radix DFT on in_re/in_im (stride istride, n
// samples) writing n samples into out_re/out_im (stride ostride).
// direction selects forward (e^{-2pi i...}) or backward (e^{+2pi i...});
// both are normalised by 1/sqrt(n). Backward is realised via the
// direction-swap trick (spec.md §4.A): swap real/imaginary parts on
// input and output around a forward-kernel call, rather than a second
// code path.
func Transform(direction Direction, n, istride int, inRe, inIm []float64, ostride int, outRe, outIm []float64) error {
	if n <= 0 {
		return fmt.Errorf("dsp: non-positive DFT size %d", n)
	}
	if !Supported(n) {
		return &UnsupportedSizeError{N: n}
	}
	buf := scratchOfSize(n)
	for i := 0; i < n; i++ {
		re := inRe[i*istride]
		im := inIm[i*istride]
		if direction == Backward {
			re, im = im, re
		}
		buf[i] = complex(re, im)
	}
	res, err := dftRecursive(buf)
	if err != nil {
		return err
	}
	scale := 1 / math.Sqrt(float64(n))
	for i := 0; i < n; i++ {
		re := real(res[i]) * scale
		im := imag(res[i]) * scale
		if direction == Backward {
			re, im = im, re
		}
		outRe[i*ostride] = re
		outIm[i*ostride] = im
	}
	return nil
}

// TransformComplex is a convenience wrapper over Transform for contiguous
// complex128 slices.
func TransformComplex(direction Direction, x []complex128) ([]complex128, error) {
	n := len(x)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}
	outRe := make([]float64, n)
	outIm := make([]float64, n)
	if err := Transform(direction, n, 1, re, im, 1, outRe, outIm); err != nil {
		return nil, err
	}
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(outRe[i], outIm[i])
	}
	return out, nil
}

// NearestNiceSize returns the smallest m >= n such that Supported(m).
// Callers that need power-of-two (or otherwise nice) padding use this
// helper rather than the DFT kernel itself (spec.md §4.A: "out of scope
// here", but trivial and harmless to provide since Supported already
// exists).
func NearestNiceSize(n int) int {
	if n <= 1 {
		return 1
	}
	for m := n; ; m++ {
		if Supported(m) {
			return m
		}
	}
}

// Parseval is a convenience check: sum(|z|^2) for a complex slice, used
// by tests asserting spec.md §8's Parseval invariant.
func Parseval(z []complex128) float64 {
	var sum float64
	for _, v := range z {
		sum += cmplx.Abs(v) * cmplx.Abs(v)
	}
	return sum
}
