package gwy

import (
	"math/rand"

	"github.com/christian-sahlmann/gwyddion-sub013/internal/repair"
)

// RepairRect identifies a hole to be filled: a rectangle of
// [XMin,XMax)x[YMin,YMax) surrounded by at least one valid pixel on every
// side (spec.md §4.E).
type RepairRect = repair.Rect

// RepairHyperbolic blends two border-anchored 1-D interpolants, one per
// axis, weighted towards whichever border is nearer.
func RepairHyperbolic(field *Field, r RepairRect) error {
	if err := repair.Hyperbolic(field.Data(), field.XRes(), field.YRes(), r); err != nil {
		return err
	}
	field.Emit("data-changed")
	return nil
}

// RepairPseudoLaplace fills the hole from an inverse-square-distance
// weighted accumulation of every border pixel.
func RepairPseudoLaplace(field *Field, r RepairRect) error {
	if err := repair.PseudoLaplace(field.Data(), field.XRes(), field.YRes(), r); err != nil {
		return err
	}
	field.Emit("data-changed")
	return nil
}

// RepairIterativeLaplace seeds the hole with RepairPseudoLaplace, then
// relaxes it with discrete Laplace smoothing until the residual falls
// below fieldRMS/1000 or 1000 iterations elapse. progress, if non-nil, is
// polled once per iteration; returning false cancels the repair in
// place.
func RepairIterativeLaplace(field *Field, r RepairRect, progress func() bool) (iterations int, cancelled bool, err error) {
	iterations, cancelled, err = repair.IterativeLaplace(field.Data(), field.XRes(), field.YRes(), r, field.RMS(), progress)
	if err == nil {
		field.Emit("data-changed")
	}
	return
}

// RepairFractal fills the hole with a hyperbolic base plus a
// statistics-matched fractal-texture residual, synthesised by
// midpoint-displacement and bilinearly resampled to the hole's
// dimensions. rng is the source of displacement noise; pass a
// deterministically seeded rand.Rand for reproducible repairs.
func RepairFractal(field *Field, r RepairRect, rng *rand.Rand) error {
	if err := repair.Fractal(field.Data(), field.XRes(), field.YRes(), r, rng); err != nil {
		return err
	}
	field.Emit("data-changed")
	return nil
}
