// Url command for the backtrail CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerline/backtrail/pkg/navstack"
	"github.com/ledgerline/backtrail/pkg/types"
)

var (
	urlPath   string
	urlQuery  string
	urlParams []string
)

var urlCmd = &cobra.Command{
	Use:   "url <target>",
	Short: "Build a context-preserving link to a target path",
	Long: `Url prints the target path augmented with navigation-context query
parameters: the current location's "from" parameter is carried forward and
"returnTo" is set to the current path and query.

Example:
  backtrail url /item/42 --path /project/p1 --query from=business-inventory-item
  backtrail url /project/p1 --path /item/42 --param highlight=t9`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		additional, err := parseKeyValues(urlParams)
		if err != nil {
			fmt.Fprintln(os.Stderr, "url:", err)
			os.Exit(exitUserError)
		}

		loc := types.Location{Path: urlPath, RawQuery: urlQuery}
		fmt.Println(navstack.BuildContextURL(loc, args[0], additional))
		return nil
	},
}

func init() {
	urlCmd.Flags().StringVar(&urlPath, "path", "", "current location path")
	urlCmd.Flags().StringVar(&urlQuery, "query", "", "current location query string (without the leading ?)")
	urlCmd.Flags().StringArrayVar(&urlParams, "param", nil, "additional query parameter as key=value (repeatable)")
}
