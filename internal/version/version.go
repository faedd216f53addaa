package version

// Version is the claimmate release version, overridable at build time via
// -ldflags "-X github.com/claimmate/claimmate/internal/version.Version=...".
var Version = "0.1.0"
