// Active command shows the delegator's current delegation.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

var activeCmd = &cobra.Command{
	Use:   "active <delegator>",
	Short: "Show the delegator's active delegation",
	Long: `Active prints the delegator's current delegation with lazy expiry
already applied: a delegation past its expiry ledger is retired to
history and reported as absent.

Example:
  proxyvote active alice
  proxyvote active alice --now 500 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runActive,
}

func runActive(cmd *cobra.Command, args []string) error {
	manager, store, err := buildManager()
	if err != nil {
		return err
	}
	defer store.Detach()

	delegator := types.SignerID(args[0])
	edge, err := manager.GetActive(delegator, currentLedger())
	if err != nil {
		return fmt.Errorf("get active delegation: %w", err)
	}

	if flagJSON {
		if edge == nil {
			return printJSON(map[string]any{"delegator": string(delegator), "active": nil})
		}
		return printJSON(edge)
	}
	if edge == nil {
		fmt.Printf("%s has no active delegation\n", delegator)
		return nil
	}
	fmt.Println(describeEdge(edge))
	return nil
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <delegation-id>",
	Short: "Look up an active delegation by its ID",
	Long: `Lookup resolves a delegation ID to its active edge. This is the
audit-side index; expired-but-unpruned edges are returned as stored.

Example:
  proxyvote lookup 018f3a2e-...-9c41`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	manager, store, err := buildManager()
	if err != nil {
		return err
	}
	defer store.Detach()

	edge, err := manager.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	if flagJSON {
		return printJSON(edge)
	}
	fmt.Println(describeEdge(edge))
	return nil
}
