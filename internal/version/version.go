package version

// Build information set by ldflags
var (
	Version = "dev"           // Set by goreleaser: -X github.com/arthur-debert/gig/internal/version.Version={{.Version}}
	Commit  = "unknown"       // Set by goreleaser: -X github.com/arthur-debert/gig/internal/version.Commit={{.Commit}}
	Date    = "unknown"       // Set by goreleaser: -X github.com/arthur-debert/gig/internal/version.Date={{.Date}}
	Author  = "Arthur Debert" // Set by goreleaser: -X github.com/arthur-debert/gig/internal/version.Author={{.Env.AUTHOR}}
)
