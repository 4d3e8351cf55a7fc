package gwy

import "github.com/christian-sahlmann/gwyddion-sub013/internal/dsp"

// Direction selects the DFT direction: Forward is e^{-2pi i...}, Backward
// is e^{+2pi i...}; both are normalised by 1/sqrt(n) (spec.md §4.A).
type Direction = dsp.Direction

const (
	Forward  = dsp.Forward
	Backward = dsp.Backward
)

// WindowType selects a windowing function applied before a DFT.
type WindowType = dsp.WindowType

const (
	WindowNone     = dsp.WindowNone
	WindowRect     = dsp.WindowRect
	WindowHann     = dsp.WindowHann
	WindowHamming  = dsp.WindowHamming
	WindowBlackman = dsp.WindowBlackman
	WindowLanczos  = dsp.WindowLanczos
	WindowWelch    = dsp.WindowWelch
	WindowNuttall  = dsp.WindowNuttall
	WindowFlatTop  = dsp.WindowFlatTop
	WindowKaiser25 = dsp.WindowKaiser25
)

// DFTSupported reports whether n's prime factorisation uses only
// {2, 3, 5, 7}, the mixed-radix kernel's supported size set.
func DFTSupported(n int) bool {
	return dsp.Supported(n)
}

// NearestNiceSize returns the smallest m >= n with DFTSupported(m).
func NearestNiceSize(n int) int {
	return dsp.NearestNiceSize(n)
}

// DFT runs the mixed-radix in-place DFT over separate real/imaginary
// arrays with arbitrary equal strides for input and output (spec.md
// §4.A). It returns *UnsupportedSizeError if n contains a prime factor
// outside {2, 3, 5, 7}.
func DFT(direction Direction, n, istride int, inRe, inIm []float64, ostride int, outRe, outIm []float64) error {
	if err := dsp.Transform(direction, n, istride, inRe, inIm, ostride, outRe, outIm); err != nil {
		if use, ok := err.(*dsp.UnsupportedSizeError); ok {
			return &UnsupportedSizeError{N: use.N}
		}
		return err
	}
	return nil
}

// DFTComplex is a convenience wrapper over DFT for contiguous complex
// sequences.
func DFTComplex(direction Direction, z []complex128) ([]complex128, error) {
	out, err := dsp.TransformComplex(direction, z)
	if err != nil {
		if use, ok := err.(*dsp.UnsupportedSizeError); ok {
			return nil, &UnsupportedSizeError{N: use.N}
		}
		return nil, err
	}
	return out, nil
}

// WindowLine multiplies line's samples in place by the coefficients of
// the given window type.
func WindowLine(line *Line, typ WindowType) {
	dsp.Apply(typ, line.Data())
	line.Emit("data-changed")
}

// WindowCoefficients returns the n coefficients of the given window type
// without applying them to anything.
func WindowCoefficients(typ WindowType, n int) []float64 {
	return dsp.Coefficients(typ, n)
}
