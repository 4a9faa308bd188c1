// Package object wraps the distance engines in an identity-bearing object
// layer for content-based similarity search.
//
// Every Object carries a generated UUID and an application-supplied locator
// (a file path, URL, or database key) and knows how to measure its distance
// to a peer of the same concrete type, abandoning early past a threshold
// where the underlying engine supports it. Comparing objects of different
// concrete types fails fast with ErrIncompatible.
//
// Concrete descriptors bind one engine each:
//
//   - AlignedSet  — sequence alignment over an ordered keypoint set;
//   - WindowedSet — the tiled alignment variant minimized over tile pairs;
//   - PointCloud  — Hausdorff distance over an unordered point set;
//   - OrdinalSet  — ordinal-preservation keypoint matching;
//   - Shape       — contour-shape descriptor matching.
//
// Composite bundles sub-objects with fixed weights: its distance is the
// weighted sum of the pairwise child distances. Registry maps kind names to
// constructors so callers can instantiate descriptors from configuration
// without compile-time knowledge of the concrete types.
package object
