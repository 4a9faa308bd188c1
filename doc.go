// Package featdist is a library of metric-space distance engines for
// content-based similarity search over multimedia feature descriptors.
//
// 🚀 What is featdist?
//
//	A collection of pairwise distance algorithms over 2-D feature sets,
//	each with threshold-based early abandonment:
//		• Alignment: Smith-Waterman (local) & Needleman-Wunsch (global)
//		  over ordered feature sequences with affine gap costs,
//		  plus windowed (tiled) variants minimized over tile pairs
//		• Hausdorff: directed max-min set distance, symmetrized
//		• Ordpres: ordinal-preservation matching — nearest-neighbour
//		  correspondences plus Spearman-footrule rank scoring
//		• Contour: curvature-peak matching via greedy branch-and-bound
//
// ✨ Why choose featdist?
//
//   - Pure computations – no I/O, no hidden global state
//   - Pluggable cost models – equality bands, continuous decay, clusters
//   - Early abandonment – every engine respects a distance threshold
//   - Concurrency-safe – engines share nothing; windowed scans can fan out
//
// Everything is organized under small single-purpose subpackages:
//
//	feature/   — Feature values, ordered Sets, unit-square window grids
//	metric/    — Lp vector metrics (weighted, early-abandoning variants)
//	cost/      — substitution / gap cost models driving the alignments
//	align/     — Smith-Waterman & Needleman-Wunsch engines + windowing
//	hausdorff/ — directed max-min set distance
//	ordpres/   — correspondence search + rank-correlation scoring
//	contour/   — contour-shape peak matching (branch-and-bound)
//	object/    — identity/locator descriptor objects & weighted composites
//	profile/   — YAML-loadable parameter presets for every engine
//
// Quick start:
//
//	a := feature.NewSet(feature.New(0.1, 0.2), feature.New(0.3, 0.4))
//	b := feature.NewSet(feature.New(0.1, 0.2), feature.New(0.3, 0.4))
//	d, err := align.Distance(a, b, align.DefaultOptions())
//	// d == 0 — identical sequences align perfectly.
//
// See each subpackage's example_test.go for runnable scenarios.
package featdist
