// Back command for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerline/backtrail/pkg/navstack"
	"github.com/ledgerline/backtrail/pkg/types"
)

var (
	backPath    string
	backQuery   string
	backDefault string
	backState   []string
)

var backCmd = &cobra.Command{
	Use:   "back",
	Short: "Resolve the back destination for a location",
	Long: `Back prints where "Back" should navigate from the given location,
consulting the session's navigation stack, any explicit returnTo hint, and
the source rules keyed by the "from" query parameter.

Example:
  backtrail back --path /item/42 --query "from=transaction&project=p1&transactionId=t9"
  backtrail back --path /project/p1 --default /projects`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := parseKeyValues(backState)
		if err != nil {
			fmt.Fprintln(os.Stderr, "back:", err)
			os.Exit(exitUserError)
		}

		store, stack, err := openStack()
		if err != nil {
			fmt.Fprintln(os.Stderr, "back:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		loc := types.Location{Path: backPath, RawQuery: backQuery, State: state}
		resolver := navstack.NewResolver(stack)
		destination := resolver.BackDestination(loc, backDefault)

		if flagJSON {
			return printJSON(struct {
				Destination string `json:"destination"`
				Source      string `json:"source,omitempty"`
				Session     string `json:"session"`
			}{
				Destination: destination,
				Source:      resolver.NavigationSource(loc),
				Session:     resolveSession(),
			})
		}
		fmt.Println(destination)
		return nil
	},
}

func init() {
	backCmd.Flags().StringVar(&backPath, "path", "", "current location path")
	backCmd.Flags().StringVar(&backQuery, "query", "", "current location query string (without the leading ?)")
	backCmd.Flags().StringVar(&backDefault, "default", "/", "fallback destination")
	backCmd.Flags().StringArrayVar(&backState, "state", nil, "location state as key=value (repeatable)")
}
