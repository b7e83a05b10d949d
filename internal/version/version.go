// Package version provides version information for the MedICS Extension SDK.
package version

// These variables are set at build time via ldflags.
var (
	// Version is the semantic version of the SDK.
	Version = "1.0.0"

	// Commit is the git commit hash.
	Commit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
