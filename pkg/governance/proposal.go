package governance

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// Proposal voting errors.
var (
	ErrNotASigner         = errors.New("caller is not a signer")
	ErrAlreadyVoted       = errors.New("effective voter already voted on this proposal")
	ErrProposalNotPending = errors.New("proposal is not pending")
)

// Proposal statuses.
const (
	ProposalPending  = "pending"
	ProposalApproved = "approved"
)

// Proposal carries the vote sets for one treasury proposal. Creation,
// execution, and spending limits live outside this module; only the
// voting surface is modeled here.
type Proposal struct {
	ID          uint64
	Status      string
	Approvals   map[types.SignerID]struct{}
	Abstentions map[types.SignerID]struct{}
}

// NewProposal creates a pending proposal with empty vote sets.
func NewProposal(id uint64) *Proposal {
	return &Proposal{
		ID:          id,
		Status:      ProposalPending,
		Approvals:   make(map[types.SignerID]struct{}),
		Abstentions: make(map[types.SignerID]struct{}),
	}
}

// HasVoted reports whether the signer appears in either vote set.
func (p *Proposal) HasVoted(signer types.SignerID) bool {
	if _, ok := p.Approvals[signer]; ok {
		return true
	}
	_, ok := p.Abstentions[signer]
	return ok
}

// VoterResolver maps a signer to its effective voter at a given ledger.
// The delegation manager satisfies this.
type VoterResolver interface {
	ResolveEffectiveVoter(signer types.SignerID, now types.Ledger) (types.SignerID, error)
}

// Approver records approvals and abstentions, resolving each caller to
// its effective voter first so that converging delegation chains cannot
// count twice.
type Approver struct {
	registry *SignerRegistry
	resolver VoterResolver
}

// NewApprover creates an Approver over the given registry and resolver.
func NewApprover(registry *SignerRegistry, resolver VoterResolver) *Approver {
	return &Approver{registry: registry, resolver: resolver}
}

// Approve records an approval on p for the signer's effective voter.
// When the approval count reaches the registry threshold, the proposal
// moves to approved.
func (a *Approver) Approve(p *Proposal, signer types.SignerID, now types.Ledger) error {
	voter, err := a.vote(p, signer, now)
	if err != nil {
		return err
	}
	p.Approvals[voter] = struct{}{}
	if len(p.Approvals) >= a.registry.Threshold() {
		p.Status = ProposalApproved
	}
	return nil
}

// Abstain records an abstention on p for the signer's effective voter.
// Abstentions never count toward the threshold but still block a second
// vote from the same effective voter.
func (a *Approver) Abstain(p *Proposal, signer types.SignerID, now types.Ledger) error {
	voter, err := a.vote(p, signer, now)
	if err != nil {
		return err
	}
	p.Abstentions[voter] = struct{}{}
	return nil
}

// vote runs the shared validation: signer membership, proposal state,
// effective-voter resolution, and the double-vote check.
func (a *Approver) vote(p *Proposal, signer types.SignerID, now types.Ledger) (types.SignerID, error) {
	if !a.registry.IsEligible(signer) {
		return "", ErrNotASigner
	}
	if p.Status != ProposalPending {
		return "", ErrProposalNotPending
	}

	voter, err := a.resolver.ResolveEffectiveVoter(signer, now)
	if err != nil {
		return "", fmt.Errorf("resolving effective voter for %s: %w", signer, err)
	}
	if p.HasVoted(voter) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyVoted, voter)
	}
	return voter, nil
}
