package delegation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

func TestResolveEffectiveVoterFallbackIdentity(t *testing.T) {
	m, _, _ := setupManager(t, "a", "b")

	voter, err := m.ResolveEffectiveVoter("a", 10)
	require.NoError(t, err)
	assert.Equal(t, types.SignerID("a"), voter)
}

func TestResolveEffectiveVoterBeforeAndAfterExpiry(t *testing.T) {
	m, _, _ := setupManager(t, "a", "b")

	_, err := m.Delegate("a", "b", 50, 10)
	require.NoError(t, err)

	voter, err := m.ResolveEffectiveVoter("a", 49)
	require.NoError(t, err)
	assert.Equal(t, types.SignerID("b"), voter)

	voter, err = m.ResolveEffectiveVoter("a", 50)
	require.NoError(t, err)
	assert.Equal(t, types.SignerID("a"), voter)

	// The expiry left exactly one history entry behind.
	log, err := m.History("a")
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, types.EndReasonExpired, log[0].EndedReason)
	assert.Equal(t, types.Ledger(50), log[0].EndedAt)
}

func TestResolveEffectiveVoterPrunesEveryHop(t *testing.T) {
	m, emitter, store := setupManager(t, "a", "b", "c")

	// A -> B permanent, B -> C expiring at 30.
	_, err := m.Delegate("a", "b", 0, 10)
	require.NoError(t, err)
	_, err = m.Delegate("b", "c", 30, 11)
	require.NoError(t, err)

	voter, err := m.ResolveEffectiveVoter("a", 29)
	require.NoError(t, err)
	assert.Equal(t, types.SignerID("c"), voter)

	// At ledger 30 the walk prunes B's stale edge and ends at B.
	voter, err = m.ResolveEffectiveVoter("a", 30)
	require.NoError(t, err)
	assert.Equal(t, types.SignerID("b"), voter)

	// The pruning was durable, not a read-time illusion.
	edge, err := store.GetActive("b")
	require.NoError(t, err)
	assert.Nil(t, edge)

	log, err := m.History("b")
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, types.EndReasonExpired, log[0].EndedReason)

	// Exactly one expired notification among the two created ones.
	var expired int
	for _, n := range emitter.Notifications {
		if n.Kind == types.NotifyExpired {
			expired++
		}
	}
	assert.Equal(t, 1, expired)
}

func TestResolveEffectiveVoterTwoHops(t *testing.T) {
	m, _, _ := setupManager(t, "a", "b", "c")

	_, err := m.Delegate("a", "b", 0, 1)
	require.NoError(t, err)
	_, err = m.Delegate("b", "c", 0, 2)
	require.NoError(t, err)

	voter, err := m.ResolveEffectiveVoter("a", 3)
	require.NoError(t, err)
	assert.Equal(t, types.SignerID("c"), voter)
}
