package governance

import (
	"errors"
	"sort"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// Registry errors.
var (
	ErrNoSigners          = errors.New("signer set must not be empty")
	ErrThresholdTooLow    = errors.New("threshold must be at least one")
	ErrThresholdTooHigh   = errors.New("threshold exceeds signer count")
	ErrSignerExists       = errors.New("signer already in the set")
	ErrSignerNotFound     = errors.New("signer not in the set")
	ErrCannotRemoveSigner = errors.New("removal would make the threshold unreachable")
)

// SignerRegistry is the set of signers eligible to vote on treasury
// proposals, together with the approval threshold. It satisfies the
// delegation manager's Eligibility interface.
type SignerRegistry struct {
	signers   map[types.SignerID]struct{}
	threshold int
}

// NewSignerRegistry creates a registry from the initial signer set and
// threshold. The set must be non-empty and the threshold must satisfy
// 1 <= threshold <= len(signers).
func NewSignerRegistry(threshold int, signers ...types.SignerID) (*SignerRegistry, error) {
	if len(signers) == 0 {
		return nil, ErrNoSigners
	}
	if threshold < 1 {
		return nil, ErrThresholdTooLow
	}
	if threshold > len(signers) {
		return nil, ErrThresholdTooHigh
	}

	set := make(map[types.SignerID]struct{}, len(signers))
	for _, s := range signers {
		set[s] = struct{}{}
	}
	return &SignerRegistry{signers: set, threshold: threshold}, nil
}

// IsEligible reports whether the signer belongs to the set.
func (r *SignerRegistry) IsEligible(signer types.SignerID) bool {
	_, ok := r.signers[signer]
	return ok
}

// Add inserts a new signer. Returns ErrSignerExists for duplicates.
func (r *SignerRegistry) Add(signer types.SignerID) error {
	if _, ok := r.signers[signer]; ok {
		return ErrSignerExists
	}
	r.signers[signer] = struct{}{}
	return nil
}

// Remove deletes a signer. Removal that would leave fewer signers than
// the threshold is rejected; the vault must stay able to approve.
func (r *SignerRegistry) Remove(signer types.SignerID) error {
	if _, ok := r.signers[signer]; !ok {
		return ErrSignerNotFound
	}
	if len(r.signers)-1 < r.threshold {
		return ErrCannotRemoveSigner
	}
	delete(r.signers, signer)
	return nil
}

// Threshold returns the approval threshold.
func (r *SignerRegistry) Threshold() int {
	return r.threshold
}

// Len returns the signer count.
func (r *SignerRegistry) Len() int {
	return len(r.signers)
}

// Signers returns the set in sorted order.
func (r *SignerRegistry) Signers() []types.SignerID {
	out := make([]types.SignerID, 0, len(r.signers))
	for s := range r.signers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
