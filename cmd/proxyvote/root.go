// Root command for the proxyvote CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proxyvote/internal/paths"
	"github.com/mesh-intelligence/proxyvote/pkg/proxyvote"
	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagNow       uint64
)

// cliConfig holds the values loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use them.
var cliConfig struct {
	dataDir    string
	backend    string
	historyCap int
	threshold  int
	signers    []string
}

var rootCmd = &cobra.Command{
	Use:          "proxyvote",
	Short:        "Proxyvote manages vote delegation for a multisig treasury",
	Version:      proxyvote.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cliConfig.dataDir = cfg.GetString(cfgKeyDataDir)
		cliConfig.backend = cfg.GetString(cfgKeyBackend)
		cliConfig.historyCap = cfg.GetInt(cfgKeyHistoryCap)
		cliConfig.threshold = cfg.GetInt(cfgKeyThreshold)
		cliConfig.signers = cfg.GetStringSlice(cfgKeySigners)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.proxyvote-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().Uint64Var(&flagNow, "now", 0, "current ledger sequence (default: unix time)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(delegateCmd)
	rootCmd.AddCommand(revokeCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(activeCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(signerCmd)
}

// currentLedger returns the --now flag value, falling back to unix time
// when unset. The engine only compares ledger values; any monotone
// counter works.
func currentLedger() types.Ledger {
	if flagNow != 0 {
		return types.Ledger(flagNow)
	}
	return types.Ledger(time.Now().Unix())
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > PROXYVOTE_DATA_DIR env >
// default $(CWD)/.proxyvote-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cliConfig.dataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > PROXYVOTE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
