// Package backtrail exposes module-level metadata.
package backtrail

// Version is the current Backtrail release.
const Version = "0.3.0"
