package object_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veskar/featdist/align"
	"github.com/veskar/featdist/contour"
	"github.com/veskar/featdist/feature"
	"github.com/veskar/featdist/hausdorff"
	"github.com/veskar/featdist/object"
)

var inf = math.Inf(1)

// cloud builds a PointCloud descriptor over the given coordinate pairs.
func cloud(locator string, coords ...[2]float64) *object.PointCloud {
	feats := make([]feature.Feature, len(coords))
	for i, c := range coords {
		feats[i] = feature.New(c[0], c[1])
	}

	return object.NewPointCloud(locator, feature.NewSet(feats...), hausdorff.DefaultOptions())
}

// diagonalSet builds n keypoints along the main diagonal.
func diagonalSet(n int) *feature.Set {
	feats := make([]feature.Feature, n)
	for i := range feats {
		feats[i] = feature.New(0.1*float64(i), 0.1*float64(i))
	}

	return feature.NewSet(feats...)
}

// TestObject_IdentityAndLocator verifies each object gets a distinct UUID
// and keeps its locator.
func TestObject_IdentityAndLocator(t *testing.T) {
	a := cloud("img/001.png", [2]float64{0, 0})
	b := cloud("img/002.png", [2]float64{0, 0})

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "img/001.png", a.Locator())
	assert.Equal(t, "img/002.png", b.Locator())
}

// TestAlignedSet_SelfDistanceZero verifies a descriptor matches a copy of
// its own keypoints perfectly.
func TestAlignedSet_SelfDistanceZero(t *testing.T) {
	a := object.NewAlignedSet("a", diagonalSet(5), align.DefaultOptions())
	b := object.NewAlignedSet("b", diagonalSet(5), align.DefaultOptions())

	d, err := a.Distance(b, inf)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestPointCloud_Distance verifies the Hausdorff engine is wired through,
// threshold included.
func TestPointCloud_Distance(t *testing.T) {
	a := cloud("a", [2]float64{0, 0})
	b := cloud("b", [2]float64{3, 4})

	d, err := a.Distance(b, inf)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)
}

// TestDistance_IncompatibleKinds verifies cross-type comparison fails fast.
func TestDistance_IncompatibleKinds(t *testing.T) {
	a := object.NewAlignedSet("a", diagonalSet(3), align.DefaultOptions())
	b := cloud("b", [2]float64{0, 0})

	_, err := a.Distance(b, inf)
	assert.ErrorIs(t, err, object.ErrIncompatible)

	_, err = b.Distance(a, inf)
	assert.ErrorIs(t, err, object.ErrIncompatible)
}

// TestShape_Distance verifies the contour engine is wired through.
func TestShape_Distance(t *testing.T) {
	c := contour.Contour{
		Eccentricity: 0.5,
		Circularity:  0.4,
		Peaks:        []contour.Peak{{Position: 0.2, Height: 0.9}},
	}
	a := object.NewShape("a", c, contour.DefaultOptions())
	b := object.NewShape("b", c, contour.DefaultOptions())

	d, err := a.Distance(b, inf)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestComposite_WeightedSum verifies the composite distance is the weighted
// sum of pairwise child distances: 0.5·5 + 2·1.
func TestComposite_WeightedSum(t *testing.T) {
	left, err := object.NewComposite("left",
		[]object.Object{cloud("l1", [2]float64{0, 0}), cloud("l2", [2]float64{0, 0})},
		[]float64{0.5, 2})
	require.NoError(t, err)
	right, err := object.NewComposite("right",
		[]object.Object{cloud("r1", [2]float64{3, 4}), cloud("r2", [2]float64{0, 1})},
		[]float64{0.5, 2})
	require.NoError(t, err)

	d, err := left.Distance(right, inf)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, d, 1e-12)
}

// TestComposite_WeightMismatch verifies the construction guard.
func TestComposite_WeightMismatch(t *testing.T) {
	_, err := object.NewComposite("c", []object.Object{cloud("a")}, []float64{1, 2})
	assert.ErrorIs(t, err, object.ErrWeightMismatch)

	_, err = object.NewComposite("c", nil, nil)
	assert.ErrorIs(t, err, object.ErrWeightMismatch)
}

// TestComposite_ChildErrorWrapped verifies a child failure surfaces with
// composite context while keeping the sentinel reachable.
func TestComposite_ChildErrorWrapped(t *testing.T) {
	left, err := object.NewComposite("left",
		[]object.Object{object.NewAlignedSet("l1", diagonalSet(3), align.DefaultOptions())},
		[]float64{1})
	require.NoError(t, err)
	right, err := object.NewComposite("right",
		[]object.Object{cloud("r1", [2]float64{0, 0})},
		[]float64{1})
	require.NoError(t, err)

	_, err = left.Distance(right, inf)
	require.Error(t, err)
	assert.ErrorIs(t, err, object.ErrIncompatible)
	assert.Contains(t, err.Error(), "left")
}

// TestComposite_ShapeMismatch verifies composites of different arity are
// incompatible.
func TestComposite_ShapeMismatch(t *testing.T) {
	left, err := object.NewComposite("left",
		[]object.Object{cloud("l1"), cloud("l2")}, []float64{1, 1})
	require.NoError(t, err)
	right, err := object.NewComposite("right",
		[]object.Object{cloud("r1")}, []float64{1})
	require.NoError(t, err)

	_, err = left.Distance(right, inf)
	assert.ErrorIs(t, err, object.ErrIncompatible)
}

// TestRegistry verifies registration, lookup, and the two sentinels.
func TestRegistry(t *testing.T) {
	reg := object.NewRegistry()
	require.NoError(t, reg.Register("cloud", func(locator string) object.Object {
		return object.NewPointCloud(locator, feature.NewSet(), hausdorff.DefaultOptions())
	}))
	require.NoError(t, reg.Register("aligned", func(locator string) object.Object {
		return object.NewAlignedSet(locator, feature.NewSet(), align.DefaultOptions())
	}))

	assert.ErrorIs(t, reg.Register("cloud", func(locator string) object.Object { return nil }), object.ErrDuplicateKind)

	obj, err := reg.New("cloud", "img/003.png")
	require.NoError(t, err)
	assert.Equal(t, "img/003.png", obj.Locator())

	_, err = reg.New("histogram", "x")
	assert.ErrorIs(t, err, object.ErrUnknownKind)

	assert.Equal(t, []string{"aligned", "cloud"}, reg.Kinds())
}
