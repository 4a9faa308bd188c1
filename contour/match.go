package contour

import (
	"container/heap"
	"math"
)

// node is one partial matching state in the branch-and-bound frontier: the
// remaining unmatched peaks of both sides plus the cost accumulated so far.
// Peak slices shrink in place as peaks are consumed.
type node struct {
	ref, qry []Peak
	cost     float64
}

func (n *node) empty() bool { return len(n.ref) == 0 && len(n.qry) == 0 }

// nodeHeap is a min-heap of nodes keyed by accumulated cost.
type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// Distance computes the contour-shape matching distance with early
// abandonment against the threshold.
//
// The coarse global-feature gate may reject with opts.Max before any peak
// matching happens. Otherwise the greedy branch-and-bound reduction runs
// until the cheapest frontier node has consumed all of its peaks; its cost
// plus the weighted global-feature cost is the distance. Once the cheapest
// node's bound already exceeds the threshold the search stops and that
// bound (≥ threshold) is returned.
func Distance(a, b Contour, threshold float64, opts Options) float64 {
	relEcc := relDiff(a.Eccentricity, b.Eccentricity)
	relCirc := relDiff(a.Circularity, b.Circularity)
	if relEcc > eccentricityGate || relCirc > circularityGate {
		return opts.Max
	}
	global := eccentricityWeight*relEcc + circularityWeight*relCirc

	frontier := rotationCandidates(a.Peaks, b.Peaks)
	heap.Init(&frontier)

	for {
		n := heap.Pop(&frontier).(*node)
		if n.cost+global > threshold {
			return n.cost + global // lower bound on every completion
		}
		if n.empty() {
			return n.cost + global
		}
		reduce(n)
		heap.Push(&frontier, n)
	}
}

// rotationCandidates generates the initial frontier: for each of the first
// rotationAnchors reference peaks and each query peak within the height
// band, the two sides are rotated so the anchor pair coincides at position
// zero, once per traversal direction, and the whole generation is mirrored
// with the roles swapped. Degenerate inputs (either side without peaks)
// yield a single node holding only the non-empty side.
func rotationCandidates(ref, qry []Peak) nodeHeap {
	if len(ref) == 0 || len(qry) == 0 {
		return nodeHeap{&node{ref: normalize(ref, 0, false), qry: normalize(qry, 0, false)}}
	}

	var frontier nodeHeap
	for _, sides := range [][2][]Peak{{ref, qry}, {qry, ref}} {
		r, q := sides[0], sides[1]
		anchors := rotationAnchors
		if len(r) < anchors {
			anchors = len(r)
		}
		for ri := 0; ri < anchors; ri++ {
			for qi := range q {
				if heightRatio(r[ri].Height, q[qi].Height) < heightSimilarity {
					continue
				}
				frontier = append(frontier,
					&node{ref: normalize(r, r[ri].Position, false), qry: normalize(q, q[qi].Position, false)},
					&node{ref: normalize(r, r[ri].Position, false), qry: normalize(q, q[qi].Position, true)},
				)
			}
		}
	}
	if len(frontier) == 0 {
		// No height-compatible anchor pair: fall back to the unrotated match.
		frontier = append(frontier, &node{ref: normalize(ref, 0, false), qry: normalize(qry, 0, false)})
	}

	return frontier
}

// reduce performs one greedy step on the node: match the tallest remaining
// reference peak against the closest query peak, or charge an unmatched
// peak its own height.
func reduce(n *node) {
	// One-sided drain: every leftover peak costs its own height.
	if len(n.ref) == 0 {
		n.cost += n.qry[0].Height
		n.qry = removePeak(n.qry, 0)

		return
	}
	if len(n.qry) == 0 {
		n.cost += n.ref[0].Height
		n.ref = removePeak(n.ref, 0)

		return
	}

	ri := tallest(n.ref)
	qi, ang, dh := closest(n.ref[ri], n.qry)
	if ang < angularTolerance {
		n.cost += math.Sqrt(ang*ang + dh*dh)
		n.ref = removePeak(n.ref, ri)
		n.qry = removePeak(n.qry, qi)

		return
	}
	n.cost += n.ref[ri].Height
	n.ref = removePeak(n.ref, ri)
}

// tallest returns the index of the highest peak.
func tallest(peaks []Peak) int {
	best := 0
	for i, p := range peaks {
		if p.Height > peaks[best].Height {
			best = i
		}
	}

	return best
}

// closest finds the query peak minimizing toroidal angular distance plus
// height difference to the reference peak; returns its index and both terms.
func closest(ref Peak, qry []Peak) (int, float64, float64) {
	bestIdx, bestScore := 0, math.Inf(1)
	var bestAng, bestDH float64
	for i, p := range qry {
		ang := torus(ref.Position, p.Position)
		dh := math.Abs(ref.Height - p.Height)
		if s := ang + dh; s < bestScore {
			bestIdx, bestScore = i, s
			bestAng, bestDH = ang, dh
		}
	}

	return bestIdx, bestAng, bestDH
}

// normalize returns a copy of peaks rotated so that pivot maps to zero,
// optionally with the traversal direction reversed (offsets negated),
// every position wrapped back into [0,1).
func normalize(peaks []Peak, pivot float64, reversed bool) []Peak {
	out := make([]Peak, len(peaks))
	for i, p := range peaks {
		off := p.Position - pivot
		if reversed {
			off = -off
		}
		out[i] = Peak{Position: wrap(off), Height: p.Height}
	}

	return out
}

// removePeak swap-deletes index i; peak order carries no meaning during
// reduction, only heights and positions do.
func removePeak(peaks []Peak, i int) []Peak {
	last := len(peaks) - 1
	peaks[i] = peaks[last]

	return peaks[:last]
}

// wrap maps any angular value into [0,1).
func wrap(x float64) float64 {
	m := math.Mod(x, 1)
	if m < 0 {
		m++
	}

	return m
}

// torus is the circular distance between two wrapped angular positions.
func torus(a, b float64) float64 {
	d := math.Abs(wrap(a) - wrap(b))
	if d > 0.5 {
		d = 1 - d
	}

	return d
}

// heightRatio is the smaller height over the larger; 1 when both are zero.
func heightRatio(a, b float64) float64 {
	hi, lo := a, b
	if lo > hi {
		hi, lo = lo, hi
	}
	if hi == 0 {
		return 1
	}

	return lo / hi
}

// relDiff is the relative difference of two non-negative statistics,
// zero when both are zero.
func relDiff(a, b float64) float64 {
	hi := math.Max(math.Abs(a), math.Abs(b))
	if hi == 0 {
		return 0
	}

	return math.Abs(a-b) / hi
}
