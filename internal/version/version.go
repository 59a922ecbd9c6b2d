package version

// Version is the ctxmon release, overridden at build time with
// -ldflags "-X github.com/himattm/ctxmon/internal/version.Version=..."
var Version = "0.1.0"
