package gwy

import "github.com/christian-sahlmann/gwyddion-sub013/internal/peaks"

// PeakBackground selects how the baseline under a peak is computed
// (spec.md §4.C).
type PeakBackground = peaks.Background

const (
	PeakBackgroundZero             = peaks.BackgroundZero
	PeakBackgroundBilateralMinimum = peaks.BackgroundBilateralMinimum
)

// Peak is one detected peak with its five derived scalars.
type Peak = peaks.Peak

// DetectPeaks locates peaks in a Line against its abscissa samples,
// refines each to sub-sample position and computes prominence, area and
// width against the chosen background model (spec.md §4.C).
func DetectPeaks(line *Line, bg PeakBackground) ([]Peak, error) {
	xs := make([]float64, line.Res())
	for i := range xs {
		xs[i] = line.X(i)
	}
	return peaks.Detect(xs, line.Data(), bg)
}

// DetectPeaksXY is the array-oriented entry point, for callers that do
// not have the abscissae packaged as a Line.
func DetectPeaksXY(xs, ys []float64, bg PeakBackground) ([]Peak, error) {
	return peaks.Detect(xs, ys, bg)
}

// SortPeaksByProminence sorts peaks by descending prominence in place.
func SortPeaksByProminence(pks []Peak) { peaks.ByProminenceDesc(pks) }

// SortPeaksByAbscissa sorts peaks by ascending abscissa in place.
func SortPeaksByAbscissa(pks []Peak) { peaks.ByAbscissaAsc(pks) }

// TopPeaksByAbscissa keeps the n most prominent peaks then re-sorts them
// by ascending abscissa.
func TopPeaksByAbscissa(pks []Peak, n int) []Peak { return peaks.TopNThenByAbscissa(pks, n) }
