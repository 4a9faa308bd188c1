// Package feature defines the 2-D point feature value, the ordered feature
// Set with a trackable sort dimension, and the unit-square window Grid used
// by the tiled alignment variants.
//
// Positions are orb.Point values pre-normalized into the unit square
// [0,1]×[0,1] by the surrounding descriptor format; the Grid tiles that
// square into rectangular orb.Bound windows.
//
// Mutation contract: Set.Sort reorders the backing slice in place. Callers
// sharing one Set across goroutines must either serialize access or use
// SortedBy, which sorts a copy and leaves the receiver untouched. The
// distance engines only ever sort copies.
package feature
