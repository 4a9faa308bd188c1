package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veskar/featdist/metric"
)

// TestL2_DimensionMismatch verifies that unequal vector lengths fail fast.
func TestL2_DimensionMismatch(t *testing.T) {
	_, err := metric.L2([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch, "length disagreement must error")
}

// TestL1L2Chebyshev_KnownValues checks the Lp family on a hand-computed pair.
func TestL1L2Chebyshev_KnownValues(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{3, 4, 0}

	d1, err := metric.L1(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, d1, "L1 = 3+4")

	d2, err := metric.L2(a, b)
	assert.NoError(t, err)
	assert.InDelta(t, 5.0, d2, 1e-12, "L2 = 5 (3-4-5 triangle)")

	dInf, err := metric.Chebyshev(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, dInf, "Chebyshev = max(3,4)")
}

// TestSquaredL2_MatchesL2 confirms SquaredL2 equals L2².
func TestSquaredL2_MatchesL2(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}

	sq, err := metric.SquaredL2(a, b)
	assert.NoError(t, err)
	d, err := metric.L2(a, b)
	assert.NoError(t, err)
	assert.InDelta(t, d*d, sq, 1e-12, "SquaredL2 must equal L2 squared")
}

// TestMinkowski_OrderOneEqualsL1 checks the generic Lp against L1.
func TestMinkowski_OrderOneEqualsL1(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{4, 5}

	mk := metric.Minkowski(1)
	dm, err := mk(a, b)
	assert.NoError(t, err)
	d1, err := metric.L1(a, b)
	assert.NoError(t, err)
	assert.Equal(t, d1, dm, "Minkowski(1) must equal L1")
}

// TestMinkowski_InvalidOrderPanics verifies p < 1 is rejected at construction.
func TestMinkowski_InvalidOrderPanics(t *testing.T) {
	assert.Panics(t, func() { metric.Minkowski(0.5) }, "p < 1 is not a metric")
}

// TestWeightedL2_UnitWeightsEqualL2 confirms unit weights reproduce plain L2.
func TestWeightedL2_UnitWeightsEqualL2(t *testing.T) {
	a := []float64{0, 3}
	b := []float64{4, 0}

	w := metric.WeightedL2([]float64{1, 1})
	dw, err := w(a, b)
	assert.NoError(t, err)
	d, err := metric.L2(a, b)
	assert.NoError(t, err)
	assert.InDelta(t, d, dw, 1e-12, "unit weights must reproduce L2")
}

// TestWeightedL2_WeightShapeChecked verifies mismatched weight lengths error.
func TestWeightedL2_WeightShapeChecked(t *testing.T) {
	w := metric.WeightedL2([]float64{1})
	_, err := w([]float64{1, 2}, []float64{3, 4})
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch, "weight length must match operands")
}

// TestL2Within_NoLimitExact verifies limit=+Inf reproduces the exact distance.
func TestL2Within_NoLimitExact(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}

	d, err := metric.L2Within(a, b, math.Inf(1))
	assert.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12, "unlimited L2Within must equal exact L2")
}

// TestL2Within_AbandonsAboveLimit verifies the partial result exceeds the limit
// whenever abandonment fires.
func TestL2Within_AbandonsAboveLimit(t *testing.T) {
	a := make([]float64, 100)
	b := make([]float64, 100)
	for i := range b {
		b[i] = 10
	}

	d, err := metric.L2Within(a, b, 1.0)
	assert.NoError(t, err)
	assert.Greater(t, d, 1.0, "abandoned result must exceed the limit")
}
