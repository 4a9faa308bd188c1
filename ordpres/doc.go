// Package ordpres implements ordinal-preservation ("Ordpres") matching
// between two feature sets: a nearest-neighbour correspondence search
// restricted by scale similarity and a spatial search radius, conflict
// resolution for multiple claims on one candidate, and a Spearman-footrule
// rank-displacement score along X and Y independently. Lower is better.
//
// Candidate lookup runs on a kd-tree over the candidate positions, so each
// radius query costs O(log m + k) instead of a linear scan.
//
// Two fast-reject gates precede the rank statistics: too few locals finding
// any candidate at all (MinAnchors), and too few surviving correspondences
// after conflict resolution (MinMatches). Either rejection returns
// Options.Max outright.
//
// Conflict resolution is greedy by default — the closer claim keeps the
// candidate, the loser is dropped — or exact via the Hungarian algorithm on
// the feasible-pair cost matrix (AssignHungarian).
//
// The discovered bounding rectangle of the matched local features is part
// of the explicit Result, available to callers for refinement passes.
package ordpres
