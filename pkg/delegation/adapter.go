package delegation

import (
	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// ResolveEffectiveVoter is the entry point for the proposal approval
// path: it prunes expired edges at every hop visited, then follows the
// chain to the terminal signer. A signer with no active delegation (or
// only an expired one) resolves to itself. The approval path must record
// votes under the returned signer, never the original caller; that is
// what keeps two chains converging on the same effective voter from
// counting twice.
func (m *Manager) ResolveEffectiveVoter(signer types.SignerID, now types.Ledger) (types.SignerID, error) {
	res, err := Resolve(m.store, signer, now, m.maxDepth, func(hop types.SignerID) error {
		_, err := m.expireIfDue(hop, now)
		return err
	})
	if err != nil {
		return "", err
	}
	return res.Effective, nil
}
