package hausdorff

import (
	"errors"
	"math"

	"github.com/veskar/featdist/feature"
)

// ErrNilSet indicates a nil feature set operand.
var ErrNilSet = errors.New("hausdorff: feature set is nil")

// Options configures a Distance call.
type Options struct {
	// Metric is the pairwise feature distance; feature.PositionDistance
	// when nil.
	Metric feature.DistanceFunc
	// Max is the worst-case distance returned when an operand is empty.
	Max float64
	// SumAbort keeps the literal reference behavior of the second pass:
	// abort on dirAB+dirBA > threshold, returning the sum. When false the
	// abort test and the abort value use the max instead, consistent with
	// the final result. See the package doc.
	SumAbort bool
}

// DefaultOptions returns planar position distance, MaxFloat64 worst case,
// and the literal sum-based abort.
func DefaultOptions() Options {
	return Options{
		Metric:   feature.PositionDistance,
		Max:      math.MaxFloat64,
		SumAbort: true,
	}
}
