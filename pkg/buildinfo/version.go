// Package buildinfo carries build-time version metadata for the cadkit
// binary, shown by `cadkit --version`.
//
// Release builds inject the values via ldflags:
//
//	go build -ldflags "-X github.com/cadkit/cadkit/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/cadkit/cadkit/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/cadkit/cadkit/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g. "v1.2.3"). "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the cobra version template, so `cadkit --version` prints
// the version, commit, and build date on separate lines.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
