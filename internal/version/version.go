package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/swman/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/swman/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/swman/internal/version.Date={{.Date}}
)

// String renders the version block printed by `swman version`
func String() string {
	return "swman version " + Version + "\n  commit: " + Commit + "\n  built:  " + Date + "\n"
}
