// Shared helpers for proxyvote CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/proxyvote/internal/memory"
	"github.com/mesh-intelligence/proxyvote/internal/sqlite"
	"github.com/mesh-intelligence/proxyvote/pkg/delegation"
	"github.com/mesh-intelligence/proxyvote/pkg/governance"
	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// attachStore resolves the data directory and attaches the configured
// backend. The caller must defer store.Detach().
func attachStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := cliConfig.backend
	if backend == "" {
		backend = defaultBackend
	}
	cfg := types.Config{
		Backend:    backend,
		DataDir:    dataDir,
		HistoryCap: cliConfig.historyCap,
	}

	var store types.Store
	switch backend {
	case types.BackendSQLite:
		store = sqlite.NewStore()
	case types.BackendMemory:
		store = memory.NewStore()
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}

	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// buildRegistry constructs the eligible-signer registry from config.yaml.
func buildRegistry() (*governance.SignerRegistry, error) {
	signers := make([]types.SignerID, 0, len(cliConfig.signers))
	for _, s := range cliConfig.signers {
		signers = append(signers, types.SignerID(s))
	}
	threshold := cliConfig.threshold
	if threshold == 0 {
		threshold = defaultThreshold
	}
	registry, err := governance.NewSignerRegistry(threshold, signers...)
	if err != nil {
		return nil, fmt.Errorf("signer registry from config: %w", err)
	}
	return registry, nil
}

// buildManager attaches the store and wires it to a manager with the
// configured signer set. Notifications go to the default slog logger.
// The caller must defer store.Detach().
func buildManager() (*delegation.Manager, types.Store, error) {
	store, err := attachStore()
	if err != nil {
		return nil, nil, err
	}
	registry, err := buildRegistry()
	if err != nil {
		store.Detach()
		return nil, nil, err
	}
	return delegation.NewManager(store, registry, delegation.NewSlogEmitter(nil)), store, nil
}

// printJSON writes v as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// describeEdge formats an edge for plain output.
func describeEdge(edge *types.DelegationEdge) string {
	expiry := "permanent"
	if !edge.Permanent() {
		expiry = fmt.Sprintf("expires at ledger %d", uint64(edge.Expiry))
	}
	return fmt.Sprintf("%s -> %s (%s, id %s, created at ledger %d)",
		edge.Delegator, edge.Delegate, expiry, edge.DelegationID, uint64(edge.CreatedAt))
}
