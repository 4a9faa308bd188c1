package object

import (
	"github.com/veskar/featdist/align"
	"github.com/veskar/featdist/contour"
	"github.com/veskar/featdist/feature"
	"github.com/veskar/featdist/hausdorff"
	"github.com/veskar/featdist/ordpres"
)

// AlignedSet is an ordered keypoint set compared by sequence alignment.
type AlignedSet struct {
	meta
	feats *feature.Set
	opts  align.Options
}

// NewAlignedSet wraps feats as an alignment descriptor.
func NewAlignedSet(locator string, feats *feature.Set, opts align.Options) *AlignedSet {
	return &AlignedSet{meta: newMeta(locator), feats: feats, opts: opts}
}

// Distance aligns the two sets. The alignment recurrence has no early
// abandonment, so the threshold is ignored.
func (o *AlignedSet) Distance(other Object, threshold float64) (float64, error) {
	peer, ok := other.(*AlignedSet)
	if !ok {
		return 0, ErrIncompatible
	}

	return align.Distance(o.feats, peer.feats, o.opts)
}

// WindowedSet is an ordered keypoint set compared by the tiled alignment
// variant: the minimum alignment distance over all tile pairs.
type WindowedSet struct {
	meta
	feats *feature.Set
	grid  feature.Grid
	opts  align.Options
}

// NewWindowedSet wraps feats as a tiled alignment descriptor.
func NewWindowedSet(locator string, feats *feature.Set, grid feature.Grid, opts align.Options) *WindowedSet {
	return &WindowedSet{meta: newMeta(locator), feats: feats, grid: grid, opts: opts}
}

// Distance scans the tile pairs with the caller's grid. The threshold is
// ignored for the same reason as AlignedSet.
func (o *WindowedSet) Distance(other Object, threshold float64) (float64, error) {
	peer, ok := other.(*WindowedSet)
	if !ok {
		return 0, ErrIncompatible
	}

	return align.Windowed(o.feats, peer.feats, o.grid, o.opts)
}

// PointCloud is an unordered point set compared by Hausdorff distance.
type PointCloud struct {
	meta
	feats *feature.Set
	opts  hausdorff.Options
}

// NewPointCloud wraps feats as a Hausdorff descriptor.
func NewPointCloud(locator string, feats *feature.Set, opts hausdorff.Options) *PointCloud {
	return &PointCloud{meta: newMeta(locator), feats: feats, opts: opts}
}

// Distance forwards the threshold so the directed passes can abort early.
func (o *PointCloud) Distance(other Object, threshold float64) (float64, error) {
	peer, ok := other.(*PointCloud)
	if !ok {
		return 0, ErrIncompatible
	}

	return hausdorff.Distance(o.feats, peer.feats, threshold, o.opts)
}

// OrdinalSet is a keypoint set compared by ordinal-preservation matching.
type OrdinalSet struct {
	meta
	feats *feature.Set
	opts  ordpres.Options
}

// NewOrdinalSet wraps feats as an ordinal-preservation descriptor.
func NewOrdinalSet(locator string, feats *feature.Set, opts ordpres.Options) *OrdinalSet {
	return &OrdinalSet{meta: newMeta(locator), feats: feats, opts: opts}
}

// Distance matches this object's features as the locals against the peer's
// candidates and returns the rank-disorder score. The matcher rejects with
// opts.Max on its own gates; the threshold is ignored.
func (o *OrdinalSet) Distance(other Object, threshold float64) (float64, error) {
	peer, ok := other.(*OrdinalSet)
	if !ok {
		return 0, ErrIncompatible
	}

	res, err := ordpres.Match(o.feats, peer.feats, o.opts)
	if err != nil {
		return 0, err
	}

	return res.Score, nil
}

// Shape is a contour-shape descriptor.
type Shape struct {
	meta
	c    contour.Contour
	opts contour.Options
}

// NewShape wraps c as a shape descriptor.
func NewShape(locator string, c contour.Contour, opts contour.Options) *Shape {
	return &Shape{meta: newMeta(locator), c: c, opts: opts}
}

// Distance forwards the threshold so the branch-and-bound search can abort.
func (o *Shape) Distance(other Object, threshold float64) (float64, error) {
	peer, ok := other.(*Shape)
	if !ok {
		return 0, ErrIncompatible
	}

	return contour.Distance(o.c, peer.c, threshold, o.opts), nil
}
