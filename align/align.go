package align

import (
	"math"

	"github.com/veskar/featdist/cost"
	"github.com/veskar/featdist/feature"
)

// Similarity computes the raw alignment score of two feature sequences in
// their given order under the model, without any normalization.
//
// Recurrence (affine gaps, three parallel matrices):
//
//	E[i][j] = max(E[i][j-1] − gapContinue, H[i][j-1] − gapOpen)  // gap in seq a
//	F[i][j] = max(F[i-1][j] − gapContinue, H[i-1][j] − gapOpen)  // gap in seq b
//	H[i][j] = max(E[i][j], F[i][j], H[i-1][j-1] + cost(a[i-1], b[j-1]))
//
// Local mode floors H at zero, zeroes the H border, forbids border gap
// states (E column 0 and F row 0 at −∞) and reports the running maximum of
// H. Global mode charges cumulative gap cost along the H border and reports
// the corner score H[m][n], which may be negative.
//
// Either sequence being empty yields similarity 0.
func Similarity(a, b []feature.Feature, model cost.Model, mode Mode) float64 {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return 0
	}

	gapOpen, gapCont := model.GapOpen(), model.GapContinue()
	negInf := math.Inf(-1)

	H := newMatrix(m+1, n+1)
	E := newMatrix(m+1, n+1)
	F := newMatrix(m+1, n+1)

	// Border conditions. E tracks gaps advancing j (consuming b), so a gap
	// cannot exist before any of b was consumed: E column 0 is −∞.
	// Symmetrically F row 0 is −∞.
	for i := 0; i <= m; i++ {
		E[i][0] = negInf
	}
	for j := 0; j <= n; j++ {
		F[0][j] = negInf
	}
	if mode == Global {
		for i := 1; i <= m; i++ {
			H[i][0] = -(gapOpen + float64(i-1)*gapCont)
			F[i][0] = H[i][0]
		}
		for j := 1; j <= n; j++ {
			H[0][j] = -(gapOpen + float64(j-1)*gapCont)
			E[0][j] = H[0][j]
		}
	}

	var best float64
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			E[i][j] = math.Max(E[i][j-1]-gapCont, H[i][j-1]-gapOpen)
			F[i][j] = math.Max(F[i-1][j]-gapCont, H[i-1][j]-gapOpen)
			h := math.Max(E[i][j], F[i][j])
			h = math.Max(h, H[i-1][j-1]+model.Cost(a[i-1], b[j-1]))
			if mode == Local {
				h = math.Max(h, 0)
				if h > best {
					best = h
				}
			}
			H[i][j] = h
		}
	}
	if mode == Global {
		return H[m][n]
	}

	return best
}

// Distance computes the normalized alignment distance in [0,1] between two
// feature sets.
//
// When both sets already share the same concrete sort dimension, a single
// alignment pass over the current order is used. Otherwise the alignment
// runs twice — over X-sorted and over Y-sorted copies of both operands —
// and the similarities are averaged. The operands themselves are never
// re-ordered.
func Distance(a, b *feature.Set, opts Options) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilSet
	}
	if err := opts.validate(); err != nil {
		return 0, err
	}

	maxPoss := maxSimilarity(a.Len(), b.Len(), opts.Model)
	if a.Len() == 0 || b.Len() == 0 {
		return 1, nil
	}

	if dim := a.SortDim(); dim != feature.DimNone && dim == b.SortDim() {
		sim := math.Max(0, Similarity(a.Features(), b.Features(), opts.Model, opts.Mode))

		return 1 - sim/maxPoss, nil
	}

	simX := Similarity(a.SortedBy(feature.DimX).Features(), b.SortedBy(feature.DimX).Features(), opts.Model, opts.Mode)
	simY := Similarity(a.SortedBy(feature.DimY).Features(), b.SortedBy(feature.DimY).Features(), opts.Model, opts.Mode)
	sim := math.Max(0, simX) + math.Max(0, simY)

	return 1 - sim/(2*maxPoss), nil
}

// maxSimilarity is min(m,n)·maxCost, guarded to maxCost when a side is
// empty so the normalization never divides by zero.
func maxSimilarity(m, n int, model cost.Model) float64 {
	shorter := m
	if n < m {
		shorter = n
	}
	if shorter == 0 {
		return model.Max()
	}

	return float64(shorter) * model.Max()
}

// newMatrix allocates an r×c zero matrix backed by one contiguous slice.
func newMatrix(r, c int) [][]float64 {
	backing := make([]float64, r*c)
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = backing[i*c : (i+1)*c]
	}

	return rows
}
