package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veskar/featdist/cost"
	"github.com/veskar/featdist/feature"
)

// TestEquality_Bands verifies the three-band thresholding of raw distance.
func TestEquality_Bands(t *testing.T) {
	m := cost.Equality{
		MatchThreshold:  0.1,
		ApproxThreshold: 0.3,
		MatchCost:       2.0,
		Distance:        feature.PositionDistance,
	}

	a := feature.New(0, 0)
	assert.Equal(t, 2.0, m.Cost(a, feature.New(0.05, 0)), "within match threshold: full cost")
	assert.Equal(t, 1.0, m.Cost(a, feature.New(0.2, 0)), "within approx threshold: half cost")
	assert.Equal(t, 0.0, m.Cost(a, feature.New(0.9, 0)), "beyond approx threshold: zero")
}

// TestEquality_NilDistanceDefaultsToPosition verifies the nil fallback.
func TestEquality_NilDistanceDefaultsToPosition(t *testing.T) {
	m := cost.Equality{MatchThreshold: 0.01, ApproxThreshold: 0.05, MatchCost: 1}
	assert.Equal(t, 1.0, m.Cost(feature.New(0.5, 0.5), feature.New(0.5, 0.5)),
		"coincident points must score a full match")
}

// TestDecay_LinearFalloff verifies the continuous model and its zero clip.
func TestDecay_LinearFalloff(t *testing.T) {
	m := cost.Decay{MaxCost: 4.0, Falloff: 0.5, Distance: feature.PositionDistance}

	a := feature.New(0, 0)
	assert.InDelta(t, 4.0, m.Cost(a, a), 1e-12, "zero distance scores MaxCost")
	assert.InDelta(t, 2.0, m.Cost(a, feature.New(0.25, 0)), 1e-12, "half falloff scores half")
	assert.Equal(t, 0.0, m.Cost(a, feature.New(0.9, 0)), "beyond falloff clips to zero")
}

// TestCluster_MatchesOnSharedID verifies cluster-id equality semantics.
func TestCluster_MatchesOnSharedID(t *testing.T) {
	m := cost.Cluster{MatchCost: 1.0}

	a, b := feature.New(0, 0), feature.New(1, 1)
	a.Cluster, b.Cluster = 7, 7
	assert.Equal(t, 1.0, m.Cost(a, b), "same cluster matches regardless of position")

	b.Cluster = 8
	assert.Equal(t, 0.0, m.Cost(a, b), "different clusters never match")

	a.Cluster, b.Cluster = feature.NoCluster, feature.NoCluster
	assert.Equal(t, 0.0, m.Cost(a, b), "unassigned features never match")
}

// TestDefault_IsSelfConsistent verifies the convenience default's invariants.
func TestDefault_IsSelfConsistent(t *testing.T) {
	m := cost.Default()

	assert.Greater(t, m.Max(), 0.0, "max achievable cost must be positive")
	assert.GreaterOrEqual(t, m.GapOpen(), m.GapContinue(), "affine gaps: opening costs at least as much as continuing")

	p := feature.New(0.3, 0.3)
	assert.Equal(t, m.Max(), m.Cost(p, p), "self-substitution scores the maximum")
}
