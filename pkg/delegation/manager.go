package delegation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// Eligibility answers whether a signer may take part in delegation. The
// surrounding governance system owns the signer set; the manager only
// consults it.
type Eligibility interface {
	IsEligible(signer types.SignerID) bool
}

// Manager validates and applies delegation lifecycle transitions over an
// injected store. Every operation takes the host-supplied ledger counter;
// the manager holds no clock and no cache. Validation always completes
// before the first store mutation, so a rejected call leaves durable
// state unchanged.
type Manager struct {
	store       types.Store
	eligibility Eligibility
	emitter     types.Emitter
	maxDepth    int
}

// NewManager creates a Manager over the given store and eligibility
// source. A nil emitter discards notifications.
func NewManager(store types.Store, eligibility Eligibility, emitter types.Emitter) *Manager {
	if emitter == nil {
		emitter = NopEmitter{}
	}
	return &Manager{
		store:       store,
		eligibility: eligibility,
		emitter:     emitter,
		maxDepth:    MaxDepth,
	}
}

// Delegate creates an active edge from delegator to delegate. Expiry 0
// makes the delegation permanent; otherwise it must lie after now. The
// new edge is rejected if either party is ineligible, the delegator
// already delegates, the edge would close a cycle, or it would push the
// delegator's chain past MaxDepth. On success the persisted edge is
// returned and a created notification emitted.
func (m *Manager) Delegate(delegator, delegate types.SignerID, expiry, now types.Ledger) (*types.DelegationEdge, error) {
	if !m.eligibility.IsEligible(delegator) || !m.eligibility.IsEligible(delegate) {
		return nil, types.ErrNotEligible
	}
	if delegator == delegate {
		return nil, types.ErrSelfDelegation
	}
	if expiry != 0 && expiry <= now {
		return nil, types.ErrExpiryInPast
	}

	// A stale leftover edge must not block a new delegation.
	if _, err := m.expireIfDue(delegator, now); err != nil {
		return nil, err
	}
	existing, err := m.store.GetActive(delegator)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, types.ErrAlreadyDelegating
	}

	// Walk the chain the new edge would extend. The delegator appearing
	// anywhere in it means the edge closes a cycle; a chain already at
	// the depth bound cannot take one more hop.
	sim, err := Resolve(m.store, delegate, now, m.maxDepth, nil)
	if err != nil {
		return nil, err
	}
	for _, visited := range sim.Path {
		if visited == delegator {
			return nil, fmt.Errorf("%w: %s is reachable from %s", types.ErrWouldCreateCycle, delegator, delegate)
		}
	}
	if sim.Hops+1 > m.maxDepth {
		return nil, fmt.Errorf("%w: %s already heads a chain of %d", types.ErrChainTooLong, delegate, sim.Hops)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating delegation ID: %w", err)
	}
	edge := types.DelegationEdge{
		DelegationID: id.String(),
		Delegator:    delegator,
		Delegate:     delegate,
		Expiry:       expiry,
		CreatedAt:    now,
		Active:       true,
	}
	if err := m.store.PutActive(delegator, edge); err != nil {
		return nil, fmt.Errorf("persisting delegation: %w", err)
	}

	m.emitter.Emit(types.Notification{
		Kind:         types.NotifyCreated,
		DelegationID: edge.DelegationID,
		Delegator:    delegator,
		Delegate:     delegate,
		Expiry:       expiry,
		At:           now,
	})
	return &edge, nil
}

// Revoke ends the caller's active delegation. Only the delegator may
// revoke its own edge. The active slot is cleared and a revoked history
// entry appended with the current ledger.
func (m *Manager) Revoke(delegator, caller types.SignerID, now types.Ledger) error {
	if caller != delegator {
		return types.ErrUnauthorized
	}

	if _, err := m.expireIfDue(delegator, now); err != nil {
		return err
	}
	edge, err := m.store.GetActive(delegator)
	if err != nil {
		return err
	}
	if edge == nil {
		return types.ErrNoActiveDelegation
	}

	if err := m.store.ClearActive(delegator); err != nil {
		return err
	}
	if err := m.store.AppendHistory(delegator, types.HistoryEntry{
		DelegationID: edge.DelegationID,
		Delegator:    edge.Delegator,
		Delegate:     edge.Delegate,
		CreatedAt:    edge.CreatedAt,
		EndedAt:      now,
		EndedReason:  types.EndReasonRevoked,
	}); err != nil {
		return err
	}

	m.emitter.Emit(types.Notification{
		Kind:         types.NotifyRevoked,
		DelegationID: edge.DelegationID,
		Delegator:    edge.Delegator,
		Delegate:     edge.Delegate,
		At:           now,
	})
	return nil
}

// GetActive returns the delegator's active edge with lazy expiry already
// applied, or nil when no usable edge exists.
func (m *Manager) GetActive(delegator types.SignerID, now types.Ledger) (*types.DelegationEdge, error) {
	if _, err := m.expireIfDue(delegator, now); err != nil {
		return nil, err
	}
	return m.store.GetActive(delegator)
}

// History returns the delegator's past delegations, most recent first.
func (m *Manager) History(delegator types.SignerID) ([]types.HistoryEntry, error) {
	return m.store.GetHistory(delegator)
}

// Lookup returns the active edge carrying the given delegation ID. This
// is the audit-side secondary index; it applies no expiry pruning.
func (m *Manager) Lookup(delegationID string) (*types.DelegationEdge, error) {
	return m.store.GetByID(delegationID)
}

// expireIfDue retires the delegator's active edge when its expiry has
// passed: the slot is cleared, an expired history entry appended with
// ended_at set to the expiry ledger, and one notification emitted.
// Idempotent under repeated calls with the same or a later now.
func (m *Manager) expireIfDue(delegator types.SignerID, now types.Ledger) (bool, error) {
	edge, err := m.store.GetActive(delegator)
	if err != nil {
		return false, err
	}
	if edge == nil || !edge.StaleAt(now) {
		return false, nil
	}

	if err := m.store.ClearActive(delegator); err != nil {
		return false, err
	}
	if err := m.store.AppendHistory(delegator, types.HistoryEntry{
		DelegationID: edge.DelegationID,
		Delegator:    edge.Delegator,
		Delegate:     edge.Delegate,
		CreatedAt:    edge.CreatedAt,
		EndedAt:      edge.Expiry,
		EndedReason:  types.EndReasonExpired,
	}); err != nil {
		return false, err
	}

	m.emitter.Emit(types.Notification{
		Kind:         types.NotifyExpired,
		DelegationID: edge.DelegationID,
		Delegator:    edge.Delegator,
		Delegate:     edge.Delegate,
		At:           edge.Expiry,
	})
	return true, nil
}
