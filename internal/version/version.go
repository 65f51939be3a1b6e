// Package version holds build version information.
package version

import "fmt"

// Populated at build time via -ldflags.
var (
	Version = "1.0.0"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-readable version string.
func Info() string {
	return fmt.Sprintf("unichat %s (commit %s, built %s)", Version, Commit, Date)
}
