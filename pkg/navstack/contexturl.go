package navstack

import (
	"net/url"

	"github.com/ledgerline/backtrail/pkg/types"
)

// BuildContextURL returns targetPath augmented with navigation-context
// query parameters: the current location's "from" parameter is carried
// forward when present, "returnTo" is set to the current full path, and
// additional parameters are applied last, overwriting on key collision.
// Any origin on targetPath is stripped; the result is path plus query.
//
// BuildContextURL is pure: it reads loc and touches no navigation state.
// An unparseable target is returned unchanged.
func BuildContextURL(loc types.Location, targetPath string, additional map[string]string) string {
	target, err := url.Parse(targetPath)
	if err != nil {
		return targetPath
	}

	query := target.Query()
	if from := loc.Query().Get(paramFrom); from != "" {
		query.Set(paramFrom, from)
	}
	query.Set(paramReturnTo, loc.FullPath())
	for k, v := range additional {
		query.Set(k, v)
	}

	// returnTo is always set, so the query is never empty.
	return target.Path + "?" + query.Encode()
}
