// Package version holds build metadata, overridden at link time with
// -ldflags "-X github.com/MrSnakeDoc/folio/internal/version.Version=v1.2.3".
package version

import (
	"fmt"
	"runtime"
	"time"
)

// Service is the name reported by /healthz.
const Service = "AI & Cybersecurity Portfolio"

var (
	Version   = "dev"                           // ex: v0.1.0
	Commit    = "none"                          // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2025-08-11T18:42:00Z
	GoVersion = runtime.Version()               // go version
)

// String is a one-line build summary for startup logs.
func String() string {
	return fmt.Sprintf("folio %s (commit=%s, built=%s, go=%s)", Version, Commit, BuildDate, GoVersion)
}
