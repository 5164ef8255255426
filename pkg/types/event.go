package types

// Notification kinds. Every successful delegate, revoke, or lazily
// discovered expiry emits exactly one notification for off-chain
// observers; there are no other side effects.
const (
	NotifyCreated = "created"
	NotifyRevoked = "revoked"
	NotifyExpired = "expired"
)

// Notification describes a delegation lifecycle event.
type Notification struct {
	Kind         string // One of the Notify constants.
	DelegationID string
	Delegator    SignerID
	Delegate     SignerID
	Expiry       Ledger // Set on created notifications; 0 for permanent.
	At           Ledger // Creation ledger, revocation ledger, or expiry ledger.
}

// Emitter receives delegation lifecycle notifications.
type Emitter interface {
	Emit(n Notification)
}
