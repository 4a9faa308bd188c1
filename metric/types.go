package metric

import "errors"

// ErrDimensionMismatch indicates two vectors of different lengths were
// compared. Descriptor comparisons fail fast on shape disagreement.
var ErrDimensionMismatch = errors.New("metric: vectors must have equal length")

// Func computes a non-negative distance between two equally sized vectors.
// Implementations return ErrDimensionMismatch when lengths disagree.
type Func func(a, b []float64) (float64, error)
