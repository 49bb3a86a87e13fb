// Pop command for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var popCmd = &cobra.Command{
	Use:   "pop",
	Short: "Remove and print the top entry of the session's navigation stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, stack, err := openStack()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pop:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		entry := stack.Pop()

		if flagJSON {
			result := entryResult{Size: stack.Size(), Session: resolveSession()}
			if entry != nil {
				result.Path = entry.Path
			}
			return printJSON(result)
		}

		// Popping an empty stack is not an error.
		if entry == nil {
			fmt.Println("navigation stack is empty")
			return nil
		}
		fmt.Println(entry.Path)
		return nil
	},
}
