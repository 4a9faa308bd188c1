package feature

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for feature operations.
var (
	// ErrBadWindowSize indicates a window width or height outside (0,1].
	ErrBadWindowSize = errors.New("feature: window width and height must lie in (0,1]")
	// ErrBadWindowShift indicates a non-positive window shift step.
	ErrBadWindowShift = errors.New("feature: window shift must be positive")
)

// Dimension names the coordinate a Set is (or should be) sorted by.
type Dimension int

const (
	// DimNone means no particular order is maintained.
	DimNone Dimension = iota
	// DimX orders features by ascending X coordinate.
	DimX
	// DimY orders features by ascending Y coordinate.
	DimY
)

// String returns the conventional short name of the dimension.
func (d Dimension) String() string {
	switch d {
	case DimX:
		return "x"
	case DimY:
		return "y"
	default:
		return "none"
	}
}

// NoCluster marks a Feature that carries no cluster assignment.
const NoCluster = -1

// Feature is a single 2-D point-like value: position, orientation and scale,
// optionally carrying a fixed-size descriptor payload and/or a cluster id.
// Features are treated as immutable by every engine; algorithms that shift
// or rotate positions operate on copies.
type Feature struct {
	// Pos is the (x, y) position inside the unit square.
	Pos orb.Point
	// Orientation is the feature's dominant angle, in radians.
	Orientation float64
	// Scale is the detection scale of the feature.
	Scale float64
	// Descriptor is an optional local descriptor vector (may be nil).
	Descriptor []float64
	// Cluster is an optional quantization cluster id; NoCluster when unset.
	Cluster int
}

// New builds a bare positional Feature with no descriptor and no cluster.
func New(x, y float64) Feature {
	return Feature{Pos: orb.Point{x, y}, Cluster: NoCluster}
}

// X returns the feature's horizontal coordinate.
func (f Feature) X() float64 { return f.Pos.X() }

// Y returns the feature's vertical coordinate.
func (f Feature) Y() float64 { return f.Pos.Y() }

// coord selects the coordinate named by dim; DimNone yields X.
func (f Feature) coord(dim Dimension) float64 {
	if dim == DimY {
		return f.Pos.Y()
	}

	return f.Pos.X()
}
