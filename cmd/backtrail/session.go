// Session commands for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage stored sessions",
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Mint a new session ID",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(newSessionID())
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List session IDs with stored navigation state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "session list:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		sessions, err := store.Sessions()
		if err != nil {
			fmt.Fprintln(os.Stderr, "session list:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if sessions == nil {
				sessions = []string{}
			}
			return printJSON(sessions)
		}
		for _, id := range sessions {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionNewCmd)
	sessionCmd.AddCommand(sessionListCmd)
}

// newSessionID generates a UUID v7 session ID.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
