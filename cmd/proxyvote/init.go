// Init command prepares the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize proxyvote configuration and storage",
	Long: `Init creates the configuration directory with a default config.yaml
(if missing) and attaches the configured backend once so the data
directory and schema exist.

Example:
  proxyvote init
  proxyvote init --data-dir ./treasury-db`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	if err := store.Detach(); err != nil {
		return err
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	fmt.Printf("Initialized proxyvote (config: %s, data: %s)\n", configDir, dataDir)
	return nil
}
