// Size command for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the entry count of the session's navigation stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, stack, err := openStack()
		if err != nil {
			fmt.Fprintln(os.Stderr, "size:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		if flagJSON {
			return printJSON(entryResult{Size: stack.Size(), Session: resolveSession()})
		}
		fmt.Println(stack.Size())
		return nil
	},
}
