// Signer commands manage the eligible-signer set in config.yaml.
package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var signerCmd = &cobra.Command{
	Use:   "signer",
	Short: "Manage the eligible signer set",
}

var signerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured signers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(map[string]any{
				"threshold": cliConfig.threshold,
				"signers":   cliConfig.signers,
			})
		}
		fmt.Printf("threshold: %d\n", cliConfig.threshold)
		for _, s := range cliConfig.signers {
			fmt.Println(s)
		}
		return nil
	},
}

var signerAddCmd = &cobra.Command{
	Use:   "add <signer>",
	Short: "Add a signer to the eligible set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if slices.Contains(cliConfig.signers, args[0]) {
			return fmt.Errorf("signer %q already in the set", args[0])
		}
		signers := append(slices.Clone(cliConfig.signers), args[0])
		return writeSigners(signers)
	},
}

var signerRemoveCmd = &cobra.Command{
	Use:   "remove <signer>",
	Short: "Remove a signer from the eligible set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := slices.Index(cliConfig.signers, args[0])
		if idx < 0 {
			return fmt.Errorf("signer %q not in the set", args[0])
		}
		signers := slices.Delete(slices.Clone(cliConfig.signers), idx, idx+1)
		if len(signers) < cliConfig.threshold {
			return fmt.Errorf("removing %q would leave fewer signers than the threshold %d", args[0], cliConfig.threshold)
		}
		return writeSigners(signers)
	},
}

func init() {
	signerCmd.AddCommand(signerListCmd)
	signerCmd.AddCommand(signerAddCmd)
	signerCmd.AddCommand(signerRemoveCmd)
}

// writeSigners persists the updated set and reports it.
func writeSigners(signers []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	threshold := cliConfig.threshold
	if threshold == 0 {
		threshold = defaultThreshold
	}
	if err := saveSigners(configDir, signers, threshold); err != nil {
		return err
	}
	fmt.Printf("signer set now has %d members\n", len(signers))
	return nil
}
