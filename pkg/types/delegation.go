package types

import "errors"

// DelegationEdge is the single active delegation a signer may hold.
// The active-edge graph has out-degree at most one per signer and must
// stay acyclic; the lifecycle manager enforces both before persistence.
type DelegationEdge struct {
	DelegationID string   // UUID v7, generated on creation; audit-side secondary index.
	Delegator    SignerID // Signer handing over voting authority.
	Delegate     SignerID // Signer receiving it.
	Expiry       Ledger   // Ledger at which the edge goes stale; 0 means permanent.
	CreatedAt    Ledger   // Ledger at creation.
	Active       bool
}

// Permanent reports whether the edge has no expiry.
func (e DelegationEdge) Permanent() bool {
	return e.Expiry == 0
}

// StaleAt reports whether the edge has expired as of now. An edge is stale
// once now reaches its expiry; permanent edges are never stale.
func (e DelegationEdge) StaleAt(now Ledger) bool {
	return !e.Permanent() && now >= e.Expiry
}

// Delegation lifecycle errors. All validation happens before any store
// mutation; a rejected request leaves durable state untouched.
var (
	ErrNotEligible        = errors.New("signer is not in the eligible set")
	ErrSelfDelegation     = errors.New("cannot delegate to self")
	ErrAlreadyDelegating  = errors.New("delegator already has an active delegation")
	ErrWouldCreateCycle   = errors.New("delegation would create a cycle")
	ErrChainTooLong       = errors.New("delegation chain would exceed the depth bound")
	ErrNoActiveDelegation = errors.New("no active delegation")
	ErrUnauthorized       = errors.New("caller is not authorized")
	ErrExpiryInPast       = errors.New("expiry must be after the current ledger")
)

// ErrCycleDetected indicates a cycle discovered while resolving a chain.
// Cycles are rejected at write time, so hitting one on a read path means
// stored state is corrupt; callers must abort rather than resolve to an
// arbitrary node.
var ErrCycleDetected = errors.New("delegation cycle detected in stored state")
