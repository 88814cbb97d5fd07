package version

import "strings"

// Version information for the symck CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// VersionString renders the cobra --version line: the bare semantic
// version, plus commit/date in parens when build-time ldflags set them.
func VersionString() string {
	var extra []string
	if c := strings.TrimSpace(GitCommit); c != "" {
		extra = append(extra, c)
	}
	if d := strings.TrimSpace(BuildDate); d != "" {
		extra = append(extra, d)
	}
	if len(extra) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(extra, ", ") + ")"
}
