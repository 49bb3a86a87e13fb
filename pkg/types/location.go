package types

import "net/url"

// Location describes the current route as seen by the navigation layer:
// the path, the raw query string, and any state the router attached to the
// navigation. Location is a value type; the navigation core never mutates it.
type Location struct {
	Path     string            // Route path, e.g. "/item/42".
	RawQuery string            // Query string without the leading "?".
	State    map[string]string // Router-attached navigation state. May be nil.
}

// FullPath returns the path joined with the query string, matching what the
// navigation stack records for a visit.
func (l Location) FullPath() string {
	if l.RawQuery == "" {
		return l.Path
	}
	return l.Path + "?" + l.RawQuery
}

// Query parses the raw query string. A malformed query yields empty values
// rather than an error; back navigation must not fail on a bad URL.
func (l Location) Query() url.Values {
	values, err := url.ParseQuery(l.RawQuery)
	if err != nil {
		return url.Values{}
	}
	return values
}

// StateValue returns the named state entry, or "" when state is absent.
func (l Location) StateValue(key string) string {
	return l.State[key]
}
