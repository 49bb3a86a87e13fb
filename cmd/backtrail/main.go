// Package main provides the backtrail CLI, a tool for inspecting and
// manipulating stored per-session navigation state.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
