// Package memory implements an in-memory Store backend. It is the default
// backend for hosts that embed the engine and keep durability elsewhere,
// and the substitutable test double the lifecycle manager is built against.
package memory

import (
	"sync"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store keeps active edges and history logs in maps keyed by delegator.
// The engine itself is single-threaded per call; the RWMutex protects
// hosts that drive the store from their own dispatcher.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config

	active  map[types.SignerID]types.DelegationEdge
	history map[types.SignerID][]types.HistoryEntry // most recent first
}

// NewStore creates a new in-memory store. The store is not attached;
// call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store. Returns ErrAlreadyAttached if already
// attached, or a config validation error.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	s.config = config
	s.active = make(map[types.SignerID]types.DelegationEdge)
	s.history = make(map[types.SignerID][]types.HistoryEntry)
	s.attached = true
	return nil
}

// Detach discards all state. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached = false
	s.active = nil
	s.history = nil
	return nil
}

// GetActive returns the active edge for delegator, or nil if none exists.
func (s *Store) GetActive(delegator types.SignerID) (*types.DelegationEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	edge, ok := s.active[delegator]
	if !ok {
		return nil, nil
	}
	return &edge, nil
}

// PutActive overwrites the active edge for delegator.
func (s *Store) PutActive(delegator types.SignerID, edge types.DelegationEdge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	s.active[delegator] = edge
	return nil
}

// ClearActive removes the active edge for delegator. Clearing an empty
// slot succeeds.
func (s *Store) ClearActive(delegator types.SignerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	delete(s.active, delegator)
	return nil
}

// AppendHistory prepends entry to the delegator's log, evicting the
// oldest entry when the log is at capacity.
func (s *Store) AppendHistory(delegator types.SignerID, entry types.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if !types.ValidEndReason(entry.EndedReason) {
		return types.ErrInvalidData
	}

	log := append([]types.HistoryEntry{entry}, s.history[delegator]...)
	if limit := s.config.EffectiveHistoryCap(); len(log) > limit {
		log = log[:limit]
	}
	s.history[delegator] = log
	return nil
}

// GetHistory returns a copy of the delegator's history, most recent first.
func (s *Store) GetHistory(delegator types.SignerID) ([]types.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	log := s.history[delegator]
	out := make([]types.HistoryEntry, len(log))
	copy(out, log)
	return out, nil
}

// GetByID scans active edges for the given delegation ID. Returns
// ErrNotFound if no active edge carries that ID.
func (s *Store) GetByID(delegationID string) (*types.DelegationEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	if delegationID == "" {
		return nil, types.ErrInvalidID
	}
	for _, edge := range s.active {
		if edge.DelegationID == delegationID {
			e := edge
			return &e, nil
		}
	}
	return nil, types.ErrNotFound
}
