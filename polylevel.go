package gwy

import "github.com/christian-sahlmann/gwyddion-sub013/internal/polylevel"

// PolyMaskMode selects how an optional per-pixel mask participates in a
// polynomial background fit (spec.md §4.D).
type PolyMaskMode = polylevel.MaskMode

const (
	PolyMaskIgnore  = polylevel.MaskIgnore
	PolyMaskInclude = polylevel.MaskInclude
	PolyMaskExclude = polylevel.MaskExclude
)

// PolyBasis is the evaluated basis (independent-degree Legendre products,
// or total-degree monomials) a polynomial fit was performed against; it
// must be passed back to PolySubtract/PolyBackground unchanged.
type PolyBasis = polylevel.Basis

// IndependentDegreeBasis builds the P_i(x)*P_j(y) Legendre basis for
// i in [0,dx], j in [0,dy].
func IndependentDegreeBasis(dx, dy int) PolyBasis {
	return polylevel.Basis{Terms: polylevel.IndependentDegreeTerms(dx, dy), Legendre: true}
}

// TotalDegreeBasis builds the x^i*y^j monomial basis with i+j <= degree.
func TotalDegreeBasis(degree int) PolyBasis {
	return polylevel.Basis{Terms: polylevel.TotalDegreeTerms(degree), Legendre: false}
}

// PolyFit solves the least-squares polynomial background fit for field
// against basis, honouring field's mask (if any) and mode. It is pure:
// field is not modified.
func PolyFit(field *Field, basis PolyBasis, mode PolyMaskMode) ([]float64, error) {
	return polylevel.Fit(field.XRes(), field.YRes(), field.Data(), field.Mask(), mode, basis)
}

// PolySubtract subtracts the polynomial described by basis/coeffs from
// field in place and emits "data-changed". Repeating Fit then
// PolySubtract converges to a zero residual in one step, since the fit is
// a linear projection (spec.md §4.D).
func PolySubtract(field *Field, basis PolyBasis, coeffs []float64) {
	polylevel.SubtractInPlace(field.XRes(), field.YRes(), field.Data(), basis, coeffs)
	field.Emit("data-changed")
}

// PolyBackground reconstructs the fitted polynomial as a standalone
// field: a zero-initialised field has the negated coefficients
// subtracted, reusing PolySubtract with inverted signs (spec.md §4.D).
func PolyBackground(xres, yres int, xreal, yreal float64, basis PolyBasis, coeffs []float64) *Field {
	bg := NewField(xres, yres, xreal, yreal)
	neg := make([]float64, len(coeffs))
	for i, c := range coeffs {
		neg[i] = -c
	}
	polylevel.SubtractInPlace(xres, yres, bg.Data(), basis, neg)
	bg.Emit("data-changed")
	return bg
}
