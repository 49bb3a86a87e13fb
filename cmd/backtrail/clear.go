// Clear command for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all entries from the session's navigation stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, stack, err := openStack()
		if err != nil {
			fmt.Fprintln(os.Stderr, "clear:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		stack.Clear()

		if flagJSON {
			return printJSON(entryResult{Size: 0, Session: resolveSession()})
		}
		fmt.Println("cleared")
		return nil
	},
}
