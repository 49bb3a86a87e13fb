// Push command for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push <path>",
	Short: "Record a visited path on the session's navigation stack",
	Long: `Push appends a path to the navigation stack unless it equals the
current top entry; consecutive duplicates are collapsed.

Example:
  backtrail push /business-inventory
  backtrail push "/item/42?from=transaction"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, stack, err := openStack()
		if err != nil {
			fmt.Fprintln(os.Stderr, "push:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		stack.Push(args[0])

		if flagJSON {
			return printJSON(entryResult{Path: args[0], Size: stack.Size(), Session: resolveSession()})
		}
		fmt.Printf("pushed %s (size %d)\n", args[0], stack.Size())
		return nil
	},
}
