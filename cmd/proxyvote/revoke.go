// Revoke command ends an active delegation.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

var revokeCaller string

var revokeCmd = &cobra.Command{
	Use:   "revoke <delegator>",
	Short: "Revoke the delegator's active delegation",
	Long: `Revoke clears the delegator's active delegation and records a revoked
history entry. Only the delegator may revoke its own delegation; --caller
exists so hosts proxying for another identity surface the authorization
error instead of masking it.

Example:
  proxyvote revoke alice
  proxyvote revoke alice --caller bob   # fails: not authorized`,
	Args: cobra.ExactArgs(1),
	RunE: runRevoke,
}

func init() {
	revokeCmd.Flags().StringVar(&revokeCaller, "caller", "", "identity invoking the revocation (default: the delegator)")
}

func runRevoke(cmd *cobra.Command, args []string) error {
	manager, store, err := buildManager()
	if err != nil {
		return err
	}
	defer store.Detach()

	delegator := types.SignerID(args[0])
	caller := delegator
	if revokeCaller != "" {
		caller = types.SignerID(revokeCaller)
	}

	if err := manager.Revoke(delegator, caller, currentLedger()); err != nil {
		return fmt.Errorf("revoke: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"delegator": string(delegator), "status": "revoked"})
	}
	fmt.Printf("Revoked delegation for %s\n", delegator)
	return nil
}
