// Peek command for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var peekCurrent string

var peekCmd = &cobra.Command{
	Use:   "peek",
	Short: "Print the top entry of the session's navigation stack without removing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, stack, err := openStack()
		if err != nil {
			fmt.Fprintln(os.Stderr, "peek:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		entry := stack.Peek(peekCurrent)

		if flagJSON {
			result := entryResult{Size: stack.Size(), Session: resolveSession()}
			if entry != nil {
				result.Path = entry.Path
			}
			return printJSON(result)
		}

		if entry == nil {
			fmt.Println("navigation stack is empty")
			return nil
		}
		fmt.Println(entry.Path)
		return nil
	},
}

func init() {
	peekCmd.Flags().StringVar(&peekCurrent, "current", "", "current location path (call-site bookkeeping; peek never filters on it)")
}
