// Version command for the proxyvote CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/proxyvote/pkg/proxyvote"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the proxyvote version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("proxyvote", proxyvote.Version)
	},
}
