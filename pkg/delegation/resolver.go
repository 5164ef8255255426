package delegation

import (
	"fmt"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// MaxDepth is the bound on delegation chain length. Creation rejects any
// edge that would push a chain past it, so resolution never needs more
// than MaxDepth hops.
const MaxDepth = 3

// Resolution is the outcome of a chain walk.
type Resolution struct {
	Effective types.SignerID   // Terminal signer of the chain.
	Hops      int              // Edges traversed to reach it.
	Path      []types.SignerID // Every signer visited, starting node first.
}

// VisitFunc is called for each signer before its active edge is read.
// The voting adapter uses it to prune expired edges along the walk;
// a nil VisitFunc walks the stored state as-is.
type VisitFunc func(signer types.SignerID) error

// Resolve follows active edges from start until it reaches a signer with
// no usable edge, and returns that signer as the effective voter. An edge
// is unusable when absent, inactive, or stale at now. The walk keeps a
// visited set: revisiting a signer means a cycle was persisted despite
// write-time checks, and Resolve fails with ErrCycleDetected instead of
// looping. Reaching maxHops terminates the walk at the current signer.
// Cost is O(maxHops) store reads regardless of graph history.
func Resolve(store types.Store, start types.SignerID, now types.Ledger, maxHops int, visit VisitFunc) (Resolution, error) {
	current := start
	visited := map[types.SignerID]bool{start: true}
	res := Resolution{Path: []types.SignerID{start}}

	for {
		if visit != nil {
			if err := visit(current); err != nil {
				return Resolution{}, fmt.Errorf("visiting %s: %w", current, err)
			}
		}

		edge, err := store.GetActive(current)
		if err != nil {
			return Resolution{}, fmt.Errorf("reading active edge for %s: %w", current, err)
		}
		if edge == nil || !edge.Active || edge.StaleAt(now) {
			res.Effective = current
			return res, nil
		}

		if visited[edge.Delegate] {
			return Resolution{}, fmt.Errorf("%w: %s -> %s", types.ErrCycleDetected, current, edge.Delegate)
		}
		if res.Hops+1 > maxHops {
			res.Effective = current
			return res, nil
		}

		current = edge.Delegate
		visited[current] = true
		res.Hops++
		res.Path = append(res.Path, current)
	}
}
