// Package version provides build-time version information for stratship
// itself (not the project it releases).
package version

var (
	// Version is the stratship version (set via -ldflags, "dev" otherwise).
	Version = "dev"
	// Commit is the git commit hash of the build.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)
