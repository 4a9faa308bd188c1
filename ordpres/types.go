package ordpres

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

// Sentinel errors for the Ordpres matcher.
var (
	// ErrNilSet indicates a nil feature set operand.
	ErrNilSet = errors.New("ordpres: feature set is nil")
	// ErrBadEpsilon indicates a non-positive correspondence search radius.
	ErrBadEpsilon = errors.New("ordpres: Epsilon must be positive")
	// ErrBadLimit indicates a negative MinAnchors or MinMatches gate.
	ErrBadLimit = errors.New("ordpres: MinAnchors and MinMatches must be non-negative")
)

// scaleTolerance bounds the relative scale difference of a correspondence:
// a candidate's scale must lie within ±10% of the local feature's scale.
const scaleTolerance = 0.10

// Assignment selects the conflict-resolution strategy.
type Assignment int

const (
	// AssignGreedy keeps the closest claim per candidate and drops losers.
	AssignGreedy Assignment = iota
	// AssignHungarian solves the feasible-pair min-cost assignment exactly.
	AssignHungarian
)

// Options configures a Match call.
type Options struct {
	// Epsilon is the maximum correspondence search radius.
	Epsilon float64
	// MinAnchors is the minimum number of local features that must find at
	// least one feasible candidate; fewer rejects with Max.
	MinAnchors int
	// MinMatches is the rejection gate on resolved correspondences: a count
	// less than or equal to it rejects with Max.
	MinMatches int
	// QueryFeatures caps how many local features take part in the search
	// (the first N in current order); 0 means all.
	QueryFeatures int
	// Expand pads the local set's bounding rectangle on every side when
	// filtering candidate positions.
	Expand float64
	// Assignment selects greedy or exact conflict resolution.
	Assignment Assignment
	// Max is the worst-case score returned on rejection.
	Max float64
}

// DefaultOptions returns the conventional matcher parameters: 0.2 search
// radius in the unit square, two-anchor and two-match gates, greedy
// resolution.
func DefaultOptions() Options {
	return Options{
		Epsilon:       0.2,
		MinAnchors:    2,
		MinMatches:    2,
		QueryFeatures: 0,
		Expand:        0.05,
		Assignment:    AssignGreedy,
		Max:           math.MaxFloat64,
	}
}

// validate checks the option invariants.
func (o Options) validate() error {
	if o.Epsilon <= 0 {
		return ErrBadEpsilon
	}
	if o.MinAnchors < 0 || o.MinMatches < 0 {
		return ErrBadLimit
	}

	return nil
}

// Result is the explicit outcome of a Match call; the matched-point bound
// is part of the result rather than a side channel on the inputs.
type Result struct {
	// Score is the rank-displacement score; Options.Max on rejection.
	Score float64
	// Pairs lists the resolved correspondences as {local index, candidate
	// index}; nil on rejection.
	Pairs [][2]int
	// Bound is the bounding rectangle of the matched local features.
	Bound orb.Bound
	// Anchors is the number of local features that found at least one
	// feasible candidate before conflict resolution.
	Anchors int
}
