// History command lists a delegator's past delegations.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history <delegator>",
	Short: "List the delegator's past delegations",
	Long: `History prints the delegator's ended delegations, most recent first.
The log is capped; the oldest entries are evicted once it fills.

Example:
  proxyvote history alice
  proxyvote history alice --json`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	manager, store, err := buildManager()
	if err != nil {
		return err
	}
	defer store.Detach()

	delegator := types.SignerID(args[0])
	log, err := manager.History(delegator)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}

	if flagJSON {
		return printJSON(log)
	}
	if len(log) == 0 {
		fmt.Printf("%s has no delegation history\n", delegator)
		return nil
	}
	for _, entry := range log {
		fmt.Printf("%s -> %s (%s at ledger %d, created at ledger %d, id %s)\n",
			entry.Delegator, entry.Delegate, entry.EndedReason,
			uint64(entry.EndedAt), uint64(entry.CreatedAt), entry.DelegationID)
	}
	return nil
}
