package app

// Set with -ldflags "-X github.com/hyperifyio/pdfvalidate/internal/app.BuildVersion=..."
// and reported by pdfvalidate -version.
var (
	BuildVersion = "0.0.0-dev"
	BuildCommit  = "unknown"
)
