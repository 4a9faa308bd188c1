package feature

import (
	"github.com/paulmach/orb/planar"

	"github.com/veskar/featdist/metric"
)

// DistanceFunc is the black-box pairwise contract every engine consumes:
// a non-negative distance between two features, early-abandoning against
// the threshold where the underlying metric supports it. A result greater
// than the threshold carries no precision guarantee beyond exceeding it.
type DistanceFunc func(a, b Feature, threshold float64) (float64, error)

// PositionDistance is the planar Euclidean distance between feature
// positions. The threshold is ignored: two subtractions and a square root
// are cheaper than the bookkeeping to abandon them.
func PositionDistance(a, b Feature, _ float64) (float64, error) {
	return planar.Distance(a.Pos, b.Pos), nil
}

// DescriptorDistance is the early-abandoning L2 distance between the two
// features' descriptor payloads. Returns metric.ErrDimensionMismatch when
// the payload lengths disagree (including one-sided nil payloads).
func DescriptorDistance(a, b Feature, threshold float64) (float64, error) {
	return metric.L2Within(a.Descriptor, b.Descriptor, threshold)
}
