package types

// Reasons a delegation ended.
const (
	EndReasonRevoked = "revoked"
	EndReasonExpired = "expired"
)

// validEndReasons is the set of recognized end reason values.
var validEndReasons = map[string]bool{
	EndReasonRevoked: true,
	EndReasonExpired: true,
}

// ValidEndReason reports whether reason is a recognized end reason.
func ValidEndReason(reason string) bool {
	return validEndReasons[reason]
}

// HistoryEntry records an ended delegation. Each delegator owns an
// append-only, capped log of these, ordered most-recent-first; inserting
// past capacity evicts the oldest entry.
type HistoryEntry struct {
	DelegationID string
	Delegator    SignerID
	Delegate     SignerID
	CreatedAt    Ledger
	EndedAt      Ledger // Revocation ledger, or the expiry ledger for expired edges.
	EndedReason  string // One of the EndReason constants.
}
