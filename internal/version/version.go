// Package version carries build metadata stamped in via ldflags.
package version

import "fmt"

// Build-time variables set by ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns version information
func Info() (string, string, string) {
	return Version, GitCommit, BuildDate
}

// String returns a one-line human-readable version string.
func String() string {
	return fmt.Sprintf("langid %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
