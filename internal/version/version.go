package version

// Version is the current figgo version, overridden at build time via ldflags.
var Version = "0.3.0"

// Commit and Date are populated by the release build.
var (
	Commit = "unknown"
	Date   = "unknown"
)
