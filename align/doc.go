// Package align implements Smith-Waterman (local) and Needleman-Wunsch
// (global) sequence alignment over ordered 2-D feature sequences, with
// affine gap costs supplied by a cost.Model.
//
// The engine maximizes a similarity score via the classic three-matrix
// recurrence (H/E/F) and converts it to a distance in [0,1]:
//
//	distance = 1 − similarity / maxPossibleSimilarity
//	maxPossibleSimilarity = min(|a|, |b|) · model.Max()
//
// When the two sets do not already share a sort dimension, the alignment is
// computed twice — once over X-sorted copies, once over Y-sorted copies —
// and the two similarities are averaged. Sets that already share an order
// are aligned in a single pass over that order.
//
// The windowed variant evaluates the same alignment over the Cartesian
// product of spatial tiles from a feature.Grid on each operand and keeps the
// minimum distance over all tile pairs; tile pairs are independent, so the
// scan optionally fans out over a bounded worker pool.
//
// Complexity: O(m·n) time and memory per alignment; windowed variants cost
// O(tiles₁ · tiles₂ · avgTileSize²).
package align
