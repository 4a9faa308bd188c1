package profile

import (
	"errors"
	"math"
)

// Sentinel errors of profile validation.
var (
	// ErrBadModel indicates an unknown cost model name.
	ErrBadModel = errors.New("profile: cost model must be equality, decay, or cluster")
	// ErrBadMode indicates an unknown alignment mode name.
	ErrBadMode = errors.New("profile: alignment mode must be smith-waterman or needleman-wunsch")
	// ErrBadAssignment indicates an unknown assignment strategy name.
	ErrBadAssignment = errors.New("profile: assignment must be greedy or hungarian")
)

// Profile is the full tunable surface of the library, one section per
// engine. Zero sections are valid; Default() supplies the conventional
// values and Parse overlays a document on top of them.
type Profile struct {
	Cost      CostProfile      `yaml:"cost"`
	Align     AlignProfile     `yaml:"align"`
	Window    WindowProfile    `yaml:"window"`
	Hausdorff HausdorffProfile `yaml:"hausdorff"`
	Ordpres   OrdpresProfile   `yaml:"ordpres"`
	Contour   ContourProfile   `yaml:"contour"`
}

// CostProfile selects and parameterizes the substitution cost model.
type CostProfile struct {
	// Model is "equality", "decay", or "cluster".
	Model string `yaml:"model"`
	// MatchThreshold and ApproxThreshold band the equality model.
	MatchThreshold  float64 `yaml:"match_threshold"`
	ApproxThreshold float64 `yaml:"approx_threshold"`
	// Falloff is the zero-similarity distance of the decay model.
	Falloff float64 `yaml:"falloff"`
	// MatchCost is the full-match similarity of every model.
	MatchCost float64 `yaml:"match_cost"`
	// OpenCost and ContinueCost are the affine gap penalties.
	OpenCost     float64 `yaml:"open_cost"`
	ContinueCost float64 `yaml:"continue_cost"`
}

// AlignProfile parameterizes the alignment engine.
type AlignProfile struct {
	// Mode is "smith-waterman" or "needleman-wunsch".
	Mode string `yaml:"mode"`
	// Parallelism bounds the windowed tile-scan worker pool.
	Parallelism int `yaml:"parallelism"`
}

// WindowProfile parameterizes the tiling grid of the windowed alignment.
type WindowProfile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	ShiftX float64 `yaml:"shift_x"`
	ShiftY float64 `yaml:"shift_y"`
}

// HausdorffProfile parameterizes the Hausdorff engine.
type HausdorffProfile struct {
	Max      float64 `yaml:"max"`
	SumAbort bool    `yaml:"sum_abort"`
}

// OrdpresProfile parameterizes the ordinal-preservation matcher.
type OrdpresProfile struct {
	Epsilon       float64 `yaml:"epsilon"`
	MinAnchors    int     `yaml:"min_anchors"`
	MinMatches    int     `yaml:"min_matches"`
	QueryFeatures int     `yaml:"query_features"`
	Expand        float64 `yaml:"expand"`
	// Assignment is "greedy" or "hungarian".
	Assignment string  `yaml:"assignment"`
	Max        float64 `yaml:"max"`
}

// ContourProfile parameterizes the contour-shape matcher.
type ContourProfile struct {
	Max float64 `yaml:"max"`
}

// Default returns the profile matching every engine's DefaultOptions and
// the default cost model.
func Default() Profile {
	return Profile{
		Cost: CostProfile{
			Model:           "equality",
			MatchThreshold:  0.01,
			ApproxThreshold: 0.05,
			Falloff:         0.05,
			MatchCost:       1.0,
			OpenCost:        0.5,
			ContinueCost:    0.25,
		},
		Align: AlignProfile{
			Mode:        "smith-waterman",
			Parallelism: 1,
		},
		Window: WindowProfile{
			Width:  0.25,
			Height: 0.25,
			ShiftX: 0.125,
			ShiftY: 0.125,
		},
		Hausdorff: HausdorffProfile{
			Max:      math.MaxFloat64,
			SumAbort: true,
		},
		Ordpres: OrdpresProfile{
			Epsilon:       0.2,
			MinAnchors:    2,
			MinMatches:    2,
			QueryFeatures: 0,
			Expand:        0.05,
			Assignment:    "greedy",
			Max:           math.MaxFloat64,
		},
		Contour: ContourProfile{
			Max: math.MaxFloat64,
		},
	}
}
