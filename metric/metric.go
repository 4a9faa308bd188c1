package metric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// L1 computes the Manhattan (L1) distance.
func L1(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	return floats.Distance(a, b, 1), nil
}

// L2 computes the Euclidean (L2) distance.
func L2(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	return floats.Distance(a, b, 2), nil
}

// SquaredL2 computes the squared Euclidean distance (no final sqrt).
// Cheaper than L2 when only relative ordering matters.
func SquaredL2(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum, d float64
	for i := range a {
		d = a[i] - b[i]
		sum += d * d
	}

	return sum, nil
}

// Chebyshev computes the L∞ distance (maximum coordinate difference).
func Chebyshev(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	return floats.Distance(a, b, math.Inf(1)), nil
}

// Minkowski returns the Lp metric for the given order p.
// Panics if p < 1 (not a metric); invalid orders are programmer error.
func Minkowski(p float64) Func {
	if p < 1 {
		panic("metric: Minkowski order must be >= 1")
	}

	return func(a, b []float64) (float64, error) {
		if len(a) != len(b) {
			return 0, ErrDimensionMismatch
		}

		return floats.Distance(a, b, p), nil
	}
}

// WeightedL2 returns a Euclidean metric with per-dimension weights.
// The weight vector's length must match the operands' length.
func WeightedL2(w []float64) Func {
	return func(a, b []float64) (float64, error) {
		if len(a) != len(b) || len(a) != len(w) {
			return 0, ErrDimensionMismatch
		}
		var sum, d float64
		for i := range a {
			d = a[i] - b[i]
			sum += w[i] * d * d
		}

		return math.Sqrt(sum), nil
	}
}

// L2Within computes the Euclidean distance with early abandonment: once the
// partial squared sum exceeds limit², accumulation stops and the partial
// root (guaranteed > limit) is returned. Passing limit = +Inf disables
// abandonment and reproduces the exact L2 distance.
func L2Within(a, b []float64, limit float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	limit2 := limit * limit
	var sum, d float64
	for i := range a {
		d = a[i] - b[i]
		sum += d * d
		if sum > limit2 {
			return math.Sqrt(sum), nil
		}
	}

	return math.Sqrt(sum), nil
}
