package align

import (
	"errors"

	"github.com/veskar/featdist/cost"
)

// Sentinel errors for the alignment engine.
var (
	// ErrNilSet indicates a nil feature set operand.
	ErrNilSet = errors.New("align: feature set is nil")
	// ErrNilModel indicates Options carried no cost model.
	ErrNilModel = errors.New("align: cost model is nil")
	// ErrBadModel indicates a cost model whose maximum achievable cost is
	// not positive, which would make the distance normalization divide by zero.
	ErrBadModel = errors.New("align: cost model max cost must be positive")
)

// Mode selects the alignment flavor.
type Mode int

const (
	// Local is Smith-Waterman: the best-scoring subsequence pair counts,
	// unaligned prefixes and suffixes are free.
	Local Mode = iota
	// Global is Needleman-Wunsch: sequences align end-to-end and border
	// gaps accumulate cost.
	Global
)

// String returns the conventional algorithm name of the mode.
func (m Mode) String() string {
	if m == Global {
		return "needleman-wunsch"
	}

	return "smith-waterman"
}

// Options configures a Distance or Windowed call.
//
// Model supplies substitution and gap costs (required). Parallelism bounds
// the worker pool of the windowed tile scan; values below 2 keep the scan
// sequential. The plain Distance path ignores Parallelism.
type Options struct {
	Mode        Mode
	Model       cost.Model
	Parallelism int
}

// DefaultOptions returns local alignment under the default equality cost
// model, sequential tile scanning.
func DefaultOptions() Options {
	return Options{Mode: Local, Model: cost.Default(), Parallelism: 1}
}

// validate checks the option invariants shared by all entry points.
func (o Options) validate() error {
	if o.Model == nil {
		return ErrNilModel
	}
	if o.Model.Max() <= 0 {
		return ErrBadModel
	}

	return nil
}
