// Package types defines the Store interface, configuration, the Location
// value type, and standard errors for the Backtrail navigation system.
package types
