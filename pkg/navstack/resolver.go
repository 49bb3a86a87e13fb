package navstack

import (
	"fmt"
	"strings"

	"github.com/ledgerline/backtrail/pkg/types"
)

// Navigation sources carried in the "from" query parameter. Linked pages set
// these through BuildContextURL so the destination knows where the user
// came from.
const (
	SourceBusinessInventoryItem = "business-inventory-item"
	SourceTransaction           = "transaction"
)

// Query parameter names shared with linked pages.
const (
	paramFrom          = "from"
	paramReturnTo      = "returnTo"
	paramProject       = "project"
	paramTransactionID = "transactionId"
)

// Route prefixes and fallbacks used by the source rules.
const (
	projectRoutePrefix       = "/project/"
	itemRoutePrefix          = "/item/"
	businessInventoryPath    = "/business-inventory"
	projectTransactionFormat = "/project/%s/transaction/%s"
)

// Resolver computes back destinations from the current location, the
// navigation stack, and navigation-context query parameters. It reads the
// stack only through Peek, so resolving during render never mutates state.
type Resolver struct {
	stack *Stack
}

// NewResolver creates a Resolver reading from stack. A nil stack is allowed;
// resolution then skips the stack and falls through to hints and rules.
func NewResolver(stack *Stack) *Resolver {
	return &Resolver{stack: stack}
}

// BackDestination returns where "Back" should navigate. First match wins:
//
//  1. the stack's top entry, when it differs from the current full path
//  2. an explicit return-to hint from location state or the returnTo
//     query parameter
//  3. source rules keyed by the "from" query parameter
//  4. defaultPath
//
// The result is always a usable path; every failure mode falls through
// toward defaultPath.
func (r *Resolver) BackDestination(loc types.Location, defaultPath string) string {
	current := loc.FullPath()

	if r.stack != nil {
		if top := r.stack.Peek(current); top != nil && top.Path != current {
			return top.Path
		}
	}

	hint := returnToHint(loc)
	if hint != "" {
		return hint
	}

	query := loc.Query()
	switch query.Get(paramFrom) {
	case SourceBusinessInventoryItem:
		if strings.HasPrefix(loc.Path, projectRoutePrefix) {
			if hint != "" {
				return hint
			}
			return businessInventoryPath
		}
	case SourceTransaction:
		if strings.HasPrefix(loc.Path, itemRoutePrefix) {
			project := query.Get(paramProject)
			transactionID := query.Get(paramTransactionID)
			if project != "" && transactionID != "" {
				return fmt.Sprintf(projectTransactionFormat, project, transactionID)
			}
		}
	}

	return defaultPath
}

// NavigationSource returns the "from" query parameter of the current
// location, or "" when the navigation carries no source hint.
func (r *Resolver) NavigationSource(loc types.Location) string {
	return loc.Query().Get(paramFrom)
}

// returnToHint extracts the explicit back target, preferring location state
// over the query string.
func returnToHint(loc types.Location) string {
	if v := loc.StateValue(paramReturnTo); v != "" {
		return v
	}
	return loc.Query().Get(paramReturnTo)
}
