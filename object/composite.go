package object

import "github.com/pkg/errors"

// Composite bundles sub-objects with fixed weights. Its distance to another
// composite is the weighted sum of the pairwise child distances, so a
// multimedia item can combine, say, a contour shape and a keypoint set into
// one searchable object.
type Composite struct {
	meta
	children []Object
	weights  []float64
}

// NewComposite builds a weighted bundle. Children and weights must be
// non-empty and pair up one-to-one.
func NewComposite(locator string, children []Object, weights []float64) (*Composite, error) {
	if len(children) == 0 || len(children) != len(weights) {
		return nil, ErrWeightMismatch
	}

	return &Composite{
		meta:     newMeta(locator),
		children: append([]Object(nil), children...),
		weights:  append([]float64(nil), weights...),
	}, nil
}

// Children returns the bundled sub-objects.
func (o *Composite) Children() []Object { return o.children }

// Distance sums the weighted pairwise child distances. The peer must be a
// composite with the same number of children; the children pair up by index
// and must themselves be mutually compatible. The threshold passes through
// to every child unchanged.
func (o *Composite) Distance(other Object, threshold float64) (float64, error) {
	peer, ok := other.(*Composite)
	if !ok || len(peer.children) != len(o.children) {
		return 0, ErrIncompatible
	}

	var total float64
	for i, child := range o.children {
		d, err := child.Distance(peer.children[i], threshold)
		if err != nil {
			return 0, errors.Wrapf(err, "object: composite %q child %d", o.locator, i)
		}
		total += o.weights[i] * d
	}

	return total, nil
}
