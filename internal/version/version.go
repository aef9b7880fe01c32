// Package version exposes build-time version information.
package version

import "fmt"

// Set at build time via -ldflags, e.g.
//
//	go build -ldflags "-X .../internal/version.Version=v1.0.0 \
//	  -X .../internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns a single-line human-readable version string.
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildTime)
}
