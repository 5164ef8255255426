// Resolve command reports the effective voter for a signer.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <signer>",
	Short: "Resolve the effective voter for a signer",
	Long: `Resolve follows the signer's delegation chain to the signer whose vote
counts, pruning expired edges along the way. A signer with no active
delegation resolves to itself.

Example:
  proxyvote resolve alice
  proxyvote resolve alice --now 500 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	manager, store, err := buildManager()
	if err != nil {
		return err
	}
	defer store.Detach()

	signer := types.SignerID(args[0])
	voter, err := manager.ResolveEffectiveVoter(signer, currentLedger())
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{
			"signer":          string(signer),
			"effective_voter": string(voter),
		})
	}
	fmt.Println(voter)
	return nil
}
