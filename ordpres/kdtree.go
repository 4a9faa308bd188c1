package ordpres

import (
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// candPoint adapts one candidate feature's position to kdtree.Comparable.
// Distance returns the SQUARED Euclidean distance, keeping radius queries
// square-root free; callers compare against Epsilon².
type candPoint struct {
	idx int
	pos orb.Point
}

func (p candPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(candPoint)

	return p.pos[d] - q.pos[d]
}

func (p candPoint) Dims() int { return 2 }

func (p candPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(candPoint)
	dx := p.pos[0] - q.pos[0]
	dy := p.pos[1] - q.pos[1]

	return dx*dx + dy*dy
}

// candPoints satisfies kdtree.Interface over a slice of candPoint.
type candPoints []candPoint

func (p candPoints) Index(i int) kdtree.Comparable        { return p[i] }
func (p candPoints) Len() int                             { return len(p) }
func (p candPoints) Pivot(d kdtree.Dim) int               { return candPlane{candPoints: p, Dim: d}.Pivot() }
func (p candPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// candPlane pivots candPoints on one dimension.
type candPlane struct {
	kdtree.Dim
	candPoints
}

func (p candPlane) Less(i, j int) bool {
	return p.candPoints[i].pos[p.Dim] < p.candPoints[j].pos[p.Dim]
}
func (p candPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p candPlane) Slice(start, end int) kdtree.SortSlicer {
	p.candPoints = p.candPoints[start:end]

	return p
}
func (p candPlane) Swap(i, j int) {
	p.candPoints[i], p.candPoints[j] = p.candPoints[j], p.candPoints[i]
}
