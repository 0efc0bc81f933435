package version

// Version info injected via ldflags at build time
var (
	// Version is set via -ldflags "-X coinwidget/version.Version=x.x.x"
	Version = "0.1.0"

	// CommitHash is set via -ldflags "-X coinwidget/version.CommitHash=xxx"
	CommitHash = "unknown"

	// BuildTime is set via -ldflags "-X coinwidget/version.BuildTime=xxx"
	BuildTime = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version including the short commit hash
func GetFullVersion() string {
	if CommitHash == "unknown" || len(CommitHash) < 7 {
		return Version
	}
	return Version + " (" + CommitHash[:7] + ")"
}

// GetBuildInfo returns build metadata
func GetBuildInfo() string {
	return "coinwidget " + Version + "\nCommit: " + CommitHash + "\nBuild Time: " + BuildTime
}
