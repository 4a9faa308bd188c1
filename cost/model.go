package cost

import (
	"math"

	"github.com/veskar/featdist/feature"
)

// Model scores feature pairs for the alignment engines.
//
// Cost returns the non-negative substitution similarity of a pair (higher =
// more similar, at most Max). GapOpen and GapContinue are the affine gap
// penalties subtracted from the running score. Implementations must be
// stateless: one Model value is shared across concurrent alignments.
type Model interface {
	Cost(a, b feature.Feature) float64
	GapOpen() float64
	GapContinue() float64
	Max() float64
}

// Equality bands a raw pairwise feature distance into three discrete
// similarity levels: full MatchCost at or under MatchThreshold, half cost
// at or under ApproxThreshold, zero beyond.
type Equality struct {
	// MatchThreshold is the distance at or below which a pair is a match.
	MatchThreshold float64
	// ApproxThreshold is the distance at or below which a pair is an
	// approximate match, scored at half cost. Must be ≥ MatchThreshold.
	ApproxThreshold float64
	// MatchCost is the similarity awarded to a full match.
	MatchCost float64
	// OpenCost and ContinueCost are the affine gap penalties.
	OpenCost, ContinueCost float64
	// Distance is the underlying pairwise metric; PositionDistance when nil.
	Distance feature.DistanceFunc
}

// Cost bands the raw distance; metric errors score as a mismatch (zero).
func (e Equality) Cost(a, b feature.Feature) float64 {
	dist := e.Distance
	if dist == nil {
		dist = feature.PositionDistance
	}
	d, err := dist(a, b, e.ApproxThreshold)
	if err != nil {
		return 0
	}
	switch {
	case d <= e.MatchThreshold:
		return e.MatchCost
	case d <= e.ApproxThreshold:
		return e.MatchCost / 2
	default:
		return 0
	}
}

func (e Equality) GapOpen() float64     { return e.OpenCost }
func (e Equality) GapContinue() float64 { return e.ContinueCost }
func (e Equality) Max() float64         { return e.MatchCost }

// Decay scores a pair by a continuous linear falloff of the raw distance:
// MaxCost·(1 − d/Falloff), clipped at zero.
type Decay struct {
	// MaxCost is the similarity of a zero-distance pair.
	MaxCost float64
	// Falloff is the distance at which similarity reaches zero.
	Falloff float64
	// OpenCost and ContinueCost are the affine gap penalties.
	OpenCost, ContinueCost float64
	// Distance is the underlying pairwise metric; PositionDistance when nil.
	Distance feature.DistanceFunc
}

// Cost applies the linear falloff; metric errors score zero.
func (c Decay) Cost(a, b feature.Feature) float64 {
	dist := c.Distance
	if dist == nil {
		dist = feature.PositionDistance
	}
	d, err := dist(a, b, c.Falloff)
	if err != nil {
		return 0
	}

	return math.Max(0, c.MaxCost*(1-d/c.Falloff))
}

func (c Decay) GapOpen() float64     { return c.OpenCost }
func (c Decay) GapContinue() float64 { return c.ContinueCost }
func (c Decay) Max() float64         { return c.MaxCost }

// Cluster awards the full MatchCost iff both features carry the same
// non-negative cluster id, and zero otherwise. Used with quantized
// descriptors where features are pre-assigned to visual words.
type Cluster struct {
	// MatchCost is the similarity of a same-cluster pair.
	MatchCost float64
	// OpenCost and ContinueCost are the affine gap penalties.
	OpenCost, ContinueCost float64
}

// Cost compares cluster ids; unassigned features never match.
func (c Cluster) Cost(a, b feature.Feature) float64 {
	if a.Cluster >= 0 && a.Cluster == b.Cluster {
		return c.MatchCost
	}

	return 0
}

func (c Cluster) GapOpen() float64     { return c.OpenCost }
func (c Cluster) GapContinue() float64 { return c.ContinueCost }
func (c Cluster) Max() float64         { return c.MatchCost }

// Default returns the convenience equality model over position distance:
// unit match cost for near-coincident points, half cost within five times
// that radius, mild affine gap penalties.
func Default() Model {
	return Equality{
		MatchThreshold:  0.01,
		ApproxThreshold: 0.05,
		MatchCost:       1.0,
		OpenCost:        0.5,
		ContinueCost:    0.25,
		Distance:        feature.PositionDistance,
	}
}
