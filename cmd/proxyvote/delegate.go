// Delegate command creates a delegation edge.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

var delegateExpiry uint64

var delegateCmd = &cobra.Command{
	Use:   "delegate <delegator> <delegate>",
	Short: "Delegate voting authority to another signer",
	Long: `Delegate hands the delegator's approval authority to another signer,
permanently or until the given ledger.

Both signers must appear in the configured signer set. A delegator holds
at most one active delegation at a time.

Example:
  proxyvote delegate alice bob
  proxyvote delegate alice bob --expiry 120960 --now 100
  proxyvote delegate alice bob --json`,
	Args: cobra.ExactArgs(2),
	RunE: runDelegate,
}

func init() {
	delegateCmd.Flags().Uint64Var(&delegateExpiry, "expiry", 0, "ledger at which the delegation expires (0 = permanent)")
}

func runDelegate(cmd *cobra.Command, args []string) error {
	manager, store, err := buildManager()
	if err != nil {
		return err
	}
	defer store.Detach()

	edge, err := manager.Delegate(
		types.SignerID(args[0]), types.SignerID(args[1]),
		types.Ledger(delegateExpiry), currentLedger(),
	)
	if err != nil {
		return fmt.Errorf("delegate: %w", err)
	}

	if flagJSON {
		return printJSON(edge)
	}
	fmt.Println("Created delegation:", describeEdge(edge))
	return nil
}
