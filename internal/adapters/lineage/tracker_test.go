package lineage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/facet/internal/adapters/lineage"
)

func TestTracker_BindAndResolve(t *testing.T) {
	tracker := lineage.NewTracker()

	_, ok := tracker.LineageOf(1)
	assert.False(t, ok)

	tracker.Bind(1, 100)
	l, ok := tracker.LineageOf(1)
	require.True(t, ok)
	assert.EqualValues(t, 100, l)
}

func TestTracker_Rebind(t *testing.T) {
	tracker := lineage.NewTracker()
	tracker.Bind(1, 100)

	tracker.Rebind(1, 2)

	l, ok := tracker.LineageOf(2)
	require.True(t, ok)
	assert.EqualValues(t, 100, l)

	_, ok = tracker.LineageOf(1)
	assert.False(t, ok, "the stale identity no longer resolves")
}

func TestTracker_RebindUnknownOld(t *testing.T) {
	tracker := lineage.NewTracker()

	// Rebinding an identity that was never bound leaves the new identity
	// unresolved instead of inventing a lineage.
	tracker.Rebind(1, 2)
	_, ok := tracker.LineageOf(2)
	assert.False(t, ok)
}

func TestTracker_Forget(t *testing.T) {
	tracker := lineage.NewTracker()
	tracker.Bind(1, 100)
	tracker.Forget(1)

	_, ok := tracker.LineageOf(1)
	assert.False(t, ok)
}
