package app

import "fmt"

// Build metadata, injected with
// -ldflags "-X github.com/heartmarshall/habitplan-backend/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is printed by `habitplan version` and logged on startup.
func BuildVersion() string {
	return fmt.Sprintf("habitplan %s (commit %s, built %s)", Version, Commit, BuildTime)
}
