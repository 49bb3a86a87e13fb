// Show command for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the session's navigation stack, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, stack, err := openStack()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		entries := stack.Entries()

		if flagJSON {
			return printJSON(struct {
				Session string   `json:"session"`
				Entries []string `json:"entries"`
			}{Session: resolveSession(), Entries: entries})
		}

		if len(entries) == 0 {
			fmt.Println("navigation stack is empty")
			return nil
		}
		for _, path := range entries {
			fmt.Println(path)
		}
		return nil
	},
}
