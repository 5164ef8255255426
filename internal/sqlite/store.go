package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// GetActive returns the active edge for delegator, or nil if none exists.
func (s *Store) GetActive(delegator types.SignerID) (*types.DelegationEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	row := s.db.QueryRow(
		"SELECT delegation_id, delegator, delegate, expiry, created_at, active FROM delegations WHERE delegator = ?",
		string(delegator),
	)
	edge, err := hydrateEdge(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting active edge for %s: %w", delegator, err)
	}
	return edge, nil
}

// PutActive overwrites the active edge for delegator.
func (s *Store) PutActive(delegator types.SignerID, edge types.DelegationEdge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if edge.DelegationID == "" {
		return types.ErrInvalidID
	}

	_, err := s.db.Exec(
		`INSERT INTO delegations (delegator, delegation_id, delegate, expiry, created_at, active)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(delegator) DO UPDATE SET
		   delegation_id = excluded.delegation_id,
		   delegate = excluded.delegate,
		   expiry = excluded.expiry,
		   created_at = excluded.created_at,
		   active = excluded.active`,
		string(delegator), edge.DelegationID, string(edge.Delegate),
		int64(edge.Expiry), int64(edge.CreatedAt), boolToInt(edge.Active),
	)
	if err != nil {
		return fmt.Errorf("persisting active edge for %s: %w", delegator, err)
	}
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
	_, err := s.db.Exec("DELETE FROM delegations WHERE delegator = ?", string(delegator))
	if err != nil {
		return fmt.Errorf("clearing active edge for %s: %w", delegator, err)
	}
	return nil
}

// AppendHistory inserts the entry and evicts the delegator's oldest rows
// past the configured capacity, in one transaction.
func (s *Store) AppendHistory(delegator types.SignerID, entry types.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if !types.ValidEndReason(entry.EndedReason) {
		return types.ErrInvalidData
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var maxSeq sql.NullInt64
	err = tx.QueryRow(
		"SELECT MAX(seq) FROM delegation_history WHERE delegator = ?", string(delegator),
	).Scan(&maxSeq)
	if err != nil {
		return fmt.Errorf("reading history sequence: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO delegation_history
		   (history_id, seq, delegation_id, delegator, delegate, created_at, ended_at, ended_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		generateUUID(), maxSeq.Int64+1, entry.DelegationID, string(delegator),
		string(entry.Delegate), int64(entry.CreatedAt), int64(entry.EndedAt), entry.EndedReason,
	)
	if err != nil {
		return fmt.Errorf("appending history: %w", err)
	}

	// Evict rows beyond capacity, oldest first.
	_, err = tx.Exec(
		`DELETE FROM delegation_history
		 WHERE delegator = ? AND history_id NOT IN (
		   SELECT history_id FROM delegation_history
		   WHERE delegator = ? ORDER BY seq DESC LIMIT ?
		 )`,
		string(delegator), string(delegator), s.config.EffectiveHistoryCap(),
	)
	if err != nil {
		return fmt.Errorf("evicting history: %w", err)
	}

	return tx.Commit()
}

// GetHistory returns the delegator's history, most recent first.
func (s *Store) GetHistory(delegator types.SignerID) ([]types.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(
		`SELECT delegation_id, delegator, delegate, created_at, ended_at, ended_reason
		 FROM delegation_history WHERE delegator = ? ORDER BY seq DESC`,
		string(delegator),
	)
	if err != nil {
		return nil, fmt.Errorf("querying history for %s: %w", delegator, err)
	}
	defer rows.Close()

	out := []types.HistoryEntry{}
	for rows.Next() {
		var entry types.HistoryEntry
		var delegatorStr, delegateStr string
		var createdAt, endedAt int64
		if err := rows.Scan(&entry.DelegationID, &delegatorStr, &delegateStr, &createdAt, &endedAt, &entry.EndedReason); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entry.Delegator = types.SignerID(delegatorStr)
		entry.Delegate = types.SignerID(delegateStr)
		entry.CreatedAt = types.Ledger(createdAt)
		entry.EndedAt = types.Ledger(endedAt)
		out = append(out, entry)
	}
	return out, rows.Err()
}

// GetByID returns the active edge carrying the given delegation ID.
func (s *Store) GetByID(delegationID string) (*types.DelegationEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	if delegationID == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow(
		"SELECT delegation_id, delegator, delegate, expiry, created_at, active FROM delegations WHERE delegation_id = ?",
		delegationID,
	)
	edge, err := hydrateEdge(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting delegation %s: %w", delegationID, err)
	}
	return edge, nil
}

// hydrateEdge scans a delegations row into a DelegationEdge.
func hydrateEdge(row *sql.Row) (*types.DelegationEdge, error) {
	var edge types.DelegationEdge
	var delegator, delegate string
	var expiry, createdAt int64
	var active int
	if err := row.Scan(&edge.DelegationID, &delegator, &delegate, &expiry, &createdAt, &active); err != nil {
		return nil, err
	}
	edge.Delegator = types.SignerID(delegator)
	edge.Delegate = types.SignerID(delegate)
	edge.Expiry = types.Ledger(expiry)
	edge.CreatedAt = types.Ledger(createdAt)
	edge.Active = active != 0
	return &edge, nil
}

// boolToInt maps a bool to its SQLite integer form.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
