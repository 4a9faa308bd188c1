// Package cost defines the pluggable scoring policy driving the alignment
// engines: a pairwise substitution cost between two features plus affine
// gap penalties and the maximum achievable pairwise cost.
//
// Higher substitution cost means MORE similar — the alignment engines
// maximize a similarity score and convert it to a distance afterwards.
//
// Models are pure value objects: stateless, safe to share across any number
// of concurrent distance computations. There is no package-level mutable
// default; Default() returns a fresh convenience value the caller owns.
package cost
