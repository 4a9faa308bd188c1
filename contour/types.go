package contour

import (
	"errors"
	"math"
)

// ErrPeakShape indicates quantized position and height arrays of unequal
// length.
var ErrPeakShape = errors.New("contour: peak position and height arrays must have equal length")

// Compatibility constants of the descriptor format. The angular tolerance
// and height band are exact values shared with other implementations; the
// gate thresholds and global-cost weights are the package's fixed policy.
const (
	// angularTolerance is the toroidal distance under which two peaks merge.
	angularTolerance = 0.1
	// heightSimilarity is the minimum height ratio for a rotation anchor pair.
	heightSimilarity = 0.7
	// rotationAnchors is how many leading reference peaks seed alignments.
	rotationAnchors = 2

	// eccentricityGate and circularityGate bound the relative global-feature
	// difference beyond which two contours are incomparable.
	eccentricityGate = 0.6
	circularityGate  = 0.3

	// eccentricityWeight and circularityWeight blend the surviving relative
	// differences into the global cost added to the matching cost.
	eccentricityWeight = 0.4
	circularityWeight  = 0.3
)

// Peak is one curvature extremum of the contour: its angular position,
// normalized into [0,1) around the closed curve, and its absolute height.
type Peak struct {
	Position float64
	Height   float64
}

// Contour is a contour-shape descriptor: two global statistics plus the
// curvature peaks, tallest first by convention of the source format.
type Contour struct {
	Eccentricity float64
	Circularity  float64
	Peaks        []Peak
}

// Options configures a Distance call.
type Options struct {
	// Max is the distance returned on coarse rejection.
	Max float64
}

// DefaultOptions returns the conventional worst-case ceiling.
func DefaultOptions() Options {
	return Options{Max: math.MaxFloat64}
}
