// Version command for the backtrail CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/backtrail/pkg/backtrail"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the backtrail version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("backtrail", backtrail.Version)
	},
}
