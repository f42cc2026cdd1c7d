// Package version holds build metadata, overridable with -ldflags -X.
package version

import "fmt"

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the version for logs, e.g. "0.1.0 (abc1234, unknown)".
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildTime)
}
