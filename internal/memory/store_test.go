package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// setupStore creates an attached in-memory store with the given history cap.
func setupStore(t *testing.T, historyCap int) *Store {
	t.Helper()
	s := NewStore()
	config := types.Config{Backend: types.BackendMemory, HistoryCap: historyCap}
	require.NoError(t, s.Attach(config))
	t.Cleanup(func() { s.Detach() })
	return s
}

func TestAttachDetachLifecycle(t *testing.T) {
	s := NewStore()
	config := types.Config{Backend: types.BackendMemory}

	// Operations before attach fail.
	_, err := s.GetActive("a")
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	require.NoError(t, s.Attach(config))
	assert.ErrorIs(t, s.Attach(config), types.ErrAlreadyAttached)

	// Detach is idempotent and drops state.
	require.NoError(t, s.PutActive("a", types.DelegationEdge{Delegator: "a", Delegate: "b", Active: true}))
	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach())

	_, err = s.GetActive("a")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	s := NewStore()
	err := s.Attach(types.Config{Backend: "postgres"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestActiveSlot(t *testing.T) {
	s := setupStore(t, 0)

	// Empty slot reads as nil, no error.
	edge, err := s.GetActive("a")
	require.NoError(t, err)
	assert.Nil(t, edge)

	put := types.DelegationEdge{DelegationID: "id-1", Delegator: "a", Delegate: "b", CreatedAt: 5, Active: true}
	require.NoError(t, s.PutActive("a", put))

	got, err := s.GetActive("a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, put, *got)

	// Overwrite replaces the slot.
	put2 := types.DelegationEdge{DelegationID: "id-2", Delegator: "a", Delegate: "c", CreatedAt: 7, Active: true}
	require.NoError(t, s.PutActive("a", put2))
	got, err = s.GetActive("a")
	require.NoError(t, err)
	assert.Equal(t, "id-2", got.DelegationID)

	// Clear empties the slot; clearing again succeeds.
	require.NoError(t, s.ClearActive("a"))
	require.NoError(t, s.ClearActive("a"))
	got, err = s.GetActive("a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHistoryOrderAndCap(t *testing.T) {
	s := setupStore(t, 3)

	for i := 1; i <= 5; i++ {
		entry := types.HistoryEntry{
			DelegationID: string(rune('0' + i)),
			Delegator:    "a",
			Delegate:     "b",
			CreatedAt:    types.Ledger(i),
			EndedAt:      types.Ledger(i + 10),
			EndedReason:  types.EndReasonRevoked,
		}
		require.NoError(t, s.AppendHistory("a", entry))
	}

	log, err := s.GetHistory("a")
	require.NoError(t, err)
	require.Len(t, log, 3, "capacity evicts oldest entries")

	// Most recent first; entries 5, 4, 3 survive.
	assert.Equal(t, types.Ledger(5), log[0].CreatedAt)
	assert.Equal(t, types.Ledger(4), log[1].CreatedAt)
	assert.Equal(t, types.Ledger(3), log[2].CreatedAt)
}

func TestHistoryRejectsUnknownReason(t *testing.T) {
	s := setupStore(t, 0)
	err := s.AppendHistory("a", types.HistoryEntry{Delegator: "a", Delegate: "b", EndedReason: "cancelled"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestGetHistoryEmpty(t *testing.T) {
	s := setupStore(t, 0)
	log, err := s.GetHistory("nobody")
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestGetByID(t *testing.T) {
	s := setupStore(t, 0)

	require.NoError(t, s.PutActive("a", types.DelegationEdge{DelegationID: "id-a", Delegator: "a", Delegate: "b", Active: true}))
	require.NoError(t, s.PutActive("b", types.DelegationEdge{DelegationID: "id-b", Delegator: "b", Delegate: "c", Active: true}))

	got, err := s.GetByID("id-b")
	require.NoError(t, err)
	assert.Equal(t, types.SignerID("b"), got.Delegator)

	_, err = s.GetByID("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.GetByID("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}
