// Package misc holds small process-identity helpers shared by the config
// and cmd/rtfdoc layers: the application name used in log file names and
// debug report bundles, and the build-time version stamp.
package misc

// appName is the name used to derive default log file and debug report
// file names. It is not expected to change at runtime.
const appName = "rtfdoc"

// version, gitHash are set via -ldflags at build time; they default to
// "dev"/"unknown" for local builds run without them.
var (
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns the application name used for default log/report
// file naming.
func GetAppName() string {
	return appName
}

// GetVersion returns the build-time version stamp.
func GetVersion() string {
	return version
}

// GetGitHash returns the build-time git commit hash stamp.
func GetGitHash() string {
	return gitHash
}
