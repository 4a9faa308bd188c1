// Package hausdorff computes the symmetrized Hausdorff distance between two
// unordered feature collections: the maximum over one set of the minimum
// pairwise distance to the other, taken in both directions.
//
// The first directed pass caches every pairwise distance so the second
// direction is a pure matrix scan.
//
// Known quirk, preserved deliberately: the reference behavior aborts the
// second pass once the SUM of the two directed maxima exceeds the threshold
// and returns that sum, while the non-aborted result is their MAX. Distance
// keeps this literal behavior by default (Options.SumAbort) because
// downstream threshold semantics may depend on it; SumAbort=false gives the
// self-consistent max-only abort instead.
package hausdorff
