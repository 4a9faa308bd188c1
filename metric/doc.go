// Package metric provides the Lp-family vector metrics consumed by the
// distance engines and their cost models.
//
// The plain Minkowski metrics delegate to gonum's floats.Distance; the
// weighted and early-abandoning variants are implemented here because
// gonum carries no such forms.
//
// All functions validate operand shape and return ErrDimensionMismatch
// on disagreement instead of panicking.
package metric
