package ordpres

import (
	"math"
	"sort"

	hungarian "github.com/arthurkushman/go-hungarian"
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/veskar/featdist/feature"
)

// bigM is the infeasible-pair cost in the Hungarian matrix, far above any
// unit-square distance yet small enough to keep the solver numerically sane.
const bigM = 1e9

// claim is one feasible correspondence candidate: local feature i could
// match candidate feature j at distance d.
type claim struct {
	i, j int
	d    float64
}

// Match runs the ordinal-preservation matcher of the local set against the
// candidate set and returns the explicit Result.
//
// Stages: (1) per-local nearest-candidate search under the Epsilon radius,
// the ±10% scale band and the Expand-padded bounding rectangle; (2) the
// MinAnchors gate; (3) conflict resolution per Options.Assignment; (4) the
// MinMatches gate; (5) Spearman-footrule rank displacement along X and Y,
// averaged over the correspondence count.
func Match(local, cand *feature.Set, opts Options) (Result, error) {
	if local == nil || cand == nil {
		return Result{}, ErrNilSet
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	locals := local.Features()
	if opts.QueryFeatures > 0 && len(locals) > opts.QueryFeatures {
		locals = locals[:opts.QueryFeatures]
	}
	if len(locals) == 0 || cand.Len() == 0 {
		return Result{Score: opts.Max}, nil
	}

	feasible, anchors := collectClaims(locals, cand, opts)
	if anchors < opts.MinAnchors {
		return Result{Score: opts.Max, Anchors: anchors}, nil
	}

	var pairs []claim
	if opts.Assignment == AssignHungarian {
		pairs = resolveHungarian(feasible)
	} else {
		pairs = resolveGreedy(feasible)
	}
	if len(pairs) <= opts.MinMatches {
		return Result{Score: opts.Max, Anchors: anchors}, nil
	}

	sumX := footrule(pairs, locals, cand, feature.DimX)
	sumY := footrule(pairs, locals, cand, feature.DimY)

	out := Result{
		Score:   (sumX + sumY) / float64(len(pairs)),
		Pairs:   make([][2]int, len(pairs)),
		Anchors: anchors,
	}
	out.Bound = orb.Bound{Min: locals[pairs[0].i].Pos, Max: locals[pairs[0].i].Pos}
	for k, p := range pairs {
		out.Pairs[k] = [2]int{p.i, p.j}
		out.Bound = out.Bound.Extend(locals[p.i].Pos)
	}

	return out, nil
}

// collectClaims finds, per local feature, every feasible candidate within
// the search radius, scale band and padded rectangle. It returns all
// feasible claims (for exact assignment) ordered so that each local's
// nearest candidate comes first, plus the anchor count.
func collectClaims(locals []feature.Feature, cand *feature.Set, opts Options) ([][]claim, int) {
	pts := make(candPoints, cand.Len())
	for j := 0; j < cand.Len(); j++ {
		pts[j] = candPoint{idx: j, pos: cand.At(j).Pos}
	}
	tree := kdtree.New(pts, false)

	window := paddedBound(locals, opts.Expand)
	feasible := make([][]claim, len(locals))
	anchors := 0
	for i, lf := range locals {
		keeper := kdtree.NewDistKeeper(opts.Epsilon * opts.Epsilon)
		tree.NearestSet(keeper, candPoint{idx: -1, pos: lf.Pos})

		var own []claim
		for _, c := range keeper.Heap {
			if c.Comparable == nil {
				continue
			}
			p := c.Comparable.(candPoint)
			cf := cand.At(p.idx)
			if !scaleCompatible(lf.Scale, cf.Scale) || !window.Contains(cf.Pos) {
				continue
			}
			own = append(own, claim{i: i, j: p.idx, d: math.Sqrt(c.Dist)})
		}
		if len(own) > 0 {
			sort.Slice(own, func(a, b int) bool { return own[a].d < own[b].d })
			anchors++
		}
		feasible[i] = own
	}

	return feasible, anchors
}

// scaleCompatible reports whether the candidate scale lies within ±10% of
// the local scale.
func scaleCompatible(local, cand float64) bool {
	lo := (1 - scaleTolerance) * local
	hi := (1 + scaleTolerance) * local
	if lo > hi {
		lo, hi = hi, lo
	}

	return cand >= lo && cand <= hi
}

// paddedBound is the locals' bounding rectangle expanded by pad on every side.
func paddedBound(locals []feature.Feature, pad float64) orb.Bound {
	b := orb.Bound{Min: locals[0].Pos, Max: locals[0].Pos}
	for _, f := range locals[1:] {
		b = b.Extend(f.Pos)
	}
	b.Min[0] -= pad
	b.Min[1] -= pad
	b.Max[0] += pad
	b.Max[1] += pad

	return b
}

// resolveGreedy takes each local's nearest feasible candidate and resolves
// multiple claims on one candidate by keeping the smaller distance; the
// losing local is dropped, not re-matched.
func resolveGreedy(feasible [][]claim) []claim {
	bestByCand := make(map[int]claim)
	for _, own := range feasible {
		if len(own) == 0 {
			continue
		}
		c := own[0]
		if prev, ok := bestByCand[c.j]; !ok || c.d < prev.d {
			bestByCand[c.j] = c
		}
	}

	out := make([]claim, 0, len(bestByCand))
	for _, c := range bestByCand {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].i < out[b].i })

	return out
}

// resolveHungarian solves the min-cost assignment over the feasible pairs
// exactly, padding the cost matrix square with bigM and discarding any
// assignment that landed on an infeasible or padded cell.
func resolveHungarian(feasible [][]claim) []claim {
	rows := make([]int, 0, len(feasible))
	colOf := make(map[int]int)
	cols := make([]int, 0)
	for i, own := range feasible {
		if len(own) == 0 {
			continue
		}
		rows = append(rows, i)
		for _, c := range own {
			if _, ok := colOf[c.j]; !ok {
				colOf[c.j] = len(cols)
				cols = append(cols, c.j)
			}
		}
	}
	if len(rows) == 0 {
		return nil
	}

	size := len(rows)
	if len(cols) > size {
		size = len(cols)
	}
	// The solver returns an empty assignment for matrices smaller than 3×3;
	// pad up and let the filters below discard the padding cells.
	if size < 3 {
		size = 3
	}
	matrix := make([][]float64, size)
	for r := range matrix {
		matrix[r] = make([]float64, size)
		for c := range matrix[r] {
			matrix[r][c] = bigM
		}
	}
	rowOf := make(map[int]int, len(rows))
	for r, i := range rows {
		rowOf[i] = r
	}
	for _, own := range feasible {
		for _, c := range own {
			matrix[rowOf[c.i]][colOf[c.j]] = c.d
		}
	}

	assigned := hungarian.SolveMin(matrix)
	out := make([]claim, 0, len(rows))
	for r, cells := range assigned {
		if r >= len(rows) {
			continue
		}
		for c, d := range cells {
			if c >= len(cols) || d >= bigM {
				continue
			}
			out = append(out, claim{i: rows[r], j: cols[c], d: d})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].i < out[b].i })

	return out
}

// footrule computes the Spearman-footrule rank-displacement sum along one
// coordinate: the matched locals and their partners are ranked by that
// coordinate independently, and each pair contributes the absolute rank
// difference of its two sides.
func footrule(pairs []claim, locals []feature.Feature, cand *feature.Set, dim feature.Dimension) float64 {
	n := len(pairs)
	rankLocal := ranks(n, func(k int) float64 { return coordOf(locals[pairs[k].i], dim) })
	rankCand := ranks(n, func(k int) float64 { return coordOf(cand.At(pairs[k].j), dim) })

	var sum float64
	for k := 0; k < n; k++ {
		sum += math.Abs(float64(rankLocal[k] - rankCand[k]))
	}

	return sum
}

// ranks returns, per pair index, its rank position under the key ordering.
func ranks(n int, key func(int) float64) []int {
	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return key(order[a]) < key(order[b]) })

	rank := make([]int, n)
	for pos, k := range order {
		rank[k] = pos
	}

	return rank
}

func coordOf(f feature.Feature, dim feature.Dimension) float64 {
	if dim == feature.DimY {
		return f.Y()
	}

	return f.X()
}
