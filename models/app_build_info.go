package models

// AppBuildInfo carries immutable build-time metadata embedded into the server
// binary via linker flags. It is exposed by the version endpoint.
type AppBuildInfo struct {
	// Version is the semantic version or git describe string of the build,
	// "unknown" when the binary was built without -ldflags stamping.
	Version string `json:"version"`

	// Date is the build timestamp string, "N/A" when unset.
	Date string `json:"build_date"`

	// Commit is the source-control commit hash of the build, "N/A" when
	// unset.
	Commit string `json:"build_commit"`
}

// NewAppBuildInfo normalizes possibly-empty linker-injected values into an
// [AppBuildInfo] with the documented defaults.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	if version == "" {
		version = "unknown"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}
