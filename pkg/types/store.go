package types

import "errors"

// Store defines the interface for backend-agnostic delegation persistence.
// It is pure key-value access: no validation, no time-awareness. Callers
// attach to a backend, operate, and detach when done. The lifecycle
// manager guarantees the one-active-edge-per-delegator invariant; the
// store only keeps what it is given.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// GetActive returns the active edge for delegator, or nil if the
	// delegator holds no active edge.
	GetActive(delegator SignerID) (*DelegationEdge, error)

	// PutActive overwrites the active edge for delegator. The caller
	// guarantees at most one active edge per delegator.
	PutActive(delegator SignerID, edge DelegationEdge) error

	// ClearActive removes the active edge for delegator. Clearing an
	// empty slot succeeds.
	ClearActive(delegator SignerID) error

	// AppendHistory prepends an entry to the delegator's history log.
	// Inserting past the configured capacity evicts the oldest entry.
	AppendHistory(delegator SignerID, entry HistoryEntry) error

	// GetHistory returns the delegator's history, most recent first.
	// A delegator with no history gets an empty slice.
	GetHistory(delegator SignerID) ([]HistoryEntry, error)

	// GetByID returns the active edge carrying the given delegation ID.
	// Returns ErrNotFound if no active edge has that ID.
	GetByID(delegationID string) (*DelegationEdge, error)
}

// Store lifecycle and lookup errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrNotFound        = errors.New("delegation not found")
	ErrInvalidID       = errors.New("invalid delegation ID")
	ErrInvalidData     = errors.New("invalid delegation data")
)
