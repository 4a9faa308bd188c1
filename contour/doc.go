// Package contour matches contour-shape descriptors: a small pair of global
// curvature statistics (eccentricity, circularity) plus a list of curvature
// peaks, each a (angular position, height) sample on the closed contour.
//
// Distance runs in three phases:
//
//  1. Coarse gate — if the relative eccentricity or circularity difference
//     exceeds fixed thresholds, the maximal distance returns immediately,
//     skipping the search entirely; otherwise their weighted sum becomes the
//     global cost added to the final answer.
//  2. Candidate generation — for each of the first two reference peaks and
//     every query peak of similar height, the contours are rotated so the
//     chosen pair coincides, in both traversal directions, and mirrored
//     with the reference/query roles swapped. Each alignment becomes a
//     branch-and-bound node holding the remaining unmatched peaks.
//  3. Greedy reduction — the cheapest node repeatedly matches its tallest
//     remaining reference peak against the closest query peak (toroidal
//     angular distance plus height difference); close pairs merge at their
//     Euclidean (angle, height) cost, far peaks are charged their own
//     height. The first node to empty both sides yields the distance.
//
// Angular positions live on the unit circle [0,1); the 0.1 angular merge
// tolerance and 0.7 height-similarity band are exact compatibility
// constants of the descriptor format.
package contour
