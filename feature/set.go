package feature

import (
	"sort"

	"github.com/paulmach/orb"
)

// Set is a resizable ordered sequence of Features with an associated
// current sort dimension. The zero value is an empty, unordered Set.
//
// Sort mutates element order in place (see the package doc's mutation
// contract); SortedBy is the copying alternative used by the engines.
type Set struct {
	feats []Feature
	dim   Dimension
}

// NewSet builds a Set over the given features. The variadic slice is copied,
// so later mutation of the arguments does not affect the Set.
func NewSet(feats ...Feature) *Set {
	s := &Set{feats: make([]Feature, len(feats)), dim: DimNone}
	copy(s.feats, feats)

	return s
}

// Len reports the number of features in the set.
func (s *Set) Len() int { return len(s.feats) }

// At returns the i-th feature in the current order.
func (s *Set) At(i int) Feature { return s.feats[i] }

// Features exposes the backing slice in its current order.
// The slice is shared with the Set; treat it as read-only.
func (s *Set) Features() []Feature { return s.feats }

// SortDim reports the dimension the set is currently sorted by
// (DimNone when no order is maintained).
func (s *Set) SortDim() Dimension { return s.dim }

// Add appends features, invalidating any previously established order.
func (s *Set) Add(feats ...Feature) {
	s.feats = append(s.feats, feats...)
	s.dim = DimNone
}

// Sort orders the backing slice ascending by the given coordinate, in place.
// A no-op when the set is already sorted by that dimension or dim is DimNone.
// Ties are not resolved stably (plain sort.Slice).
func (s *Set) Sort(dim Dimension) {
	if dim == DimNone || dim == s.dim {
		return
	}
	sort.Slice(s.feats, func(i, j int) bool {
		return s.feats[i].coord(dim) < s.feats[j].coord(dim)
	})
	s.dim = dim
}

// SortedBy returns a sorted copy, leaving the receiver untouched.
func (s *Set) SortedBy(dim Dimension) *Set {
	c := s.Clone()
	c.Sort(dim)

	return c
}

// Clone returns a deep-enough copy: the feature slice is duplicated,
// descriptor payloads stay shared (they are read-only by contract).
func (s *Set) Clone() *Set {
	c := &Set{feats: make([]Feature, len(s.feats)), dim: s.dim}
	copy(c.feats, s.feats)

	return c
}

// Within returns the subset of features whose position falls inside the
// given window (bounds inclusive), preserving the current sort dimension.
func (s *Set) Within(w orb.Bound) *Set {
	c := &Set{feats: make([]Feature, 0, len(s.feats)), dim: s.dim}
	for _, f := range s.feats {
		if w.Contains(f.Pos) {
			c.feats = append(c.feats, f)
		}
	}

	return c
}

// Bound returns the minimal axis-aligned rectangle enclosing every feature
// position; the zero Bound for an empty set.
func (s *Set) Bound() orb.Bound {
	if len(s.feats) == 0 {
		return orb.Bound{}
	}
	b := orb.Bound{Min: s.feats[0].Pos, Max: s.feats[0].Pos}
	for _, f := range s.feats[1:] {
		b = b.Extend(f.Pos)
	}

	return b
}
