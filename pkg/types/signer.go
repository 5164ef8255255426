package types

// SignerID is an opaque identifier for an account authorized to vote on
// treasury proposals. The surrounding governance system supplies these;
// the engine never inspects their contents.
type SignerID string

// Ledger is the monotonically increasing time counter supplied by the host
// on every call. The engine never reads wall-clock time; all expiry
// comparisons are against externally provided Ledger values.
type Ledger uint64
