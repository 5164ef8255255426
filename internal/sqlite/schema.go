package sqlite

// Schema DDL. The delegations table is keyed by delegator: the single
// active slot per signer is a primary-key constraint, not application
// bookkeeping. History rows keep an insertion sequence so reads can
// return most-recent-first without trusting ledger values for ordering.
const (
	createDelegations = `CREATE TABLE IF NOT EXISTS delegations (
    delegator TEXT PRIMARY KEY,
    delegation_id TEXT NOT NULL,
    delegate TEXT NOT NULL,
    expiry INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    active INTEGER NOT NULL
);`

	createDelegationHistory = `CREATE TABLE IF NOT EXISTS delegation_history (
    history_id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    delegation_id TEXT NOT NULL,
    delegator TEXT NOT NULL,
    delegate TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    ended_at INTEGER NOT NULL,
    ended_reason TEXT NOT NULL
);`
)

// Index DDL for the audit lookup and history reads.
const (
	idxDelegationsID       = `CREATE UNIQUE INDEX IF NOT EXISTS idx_delegations_id ON delegations(delegation_id);`
	idxHistoryDelegator    = `CREATE INDEX IF NOT EXISTS idx_history_delegator ON delegation_history(delegator);`
	idxHistoryDelegatorSeq = `CREATE INDEX IF NOT EXISTS idx_history_delegator_seq ON delegation_history(delegator, seq);`
)

// schemaDDL lists all statements in execution order.
var schemaDDL = []string{
	createDelegations,
	createDelegationHistory,
	idxDelegationsID,
	idxHistoryDelegator,
	idxHistoryDelegatorSeq,
}
