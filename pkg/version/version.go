package version

import (
	"fmt"
	"runtime"
)

// Build information. Populated at build time via -ldflags.
var (
	// BinaryName is the name of the binary
	BinaryName = "aks-mcp-server"

	// Version is the current version of the binary
	Version = "0.3.0"

	// GitCommit is the git commit hash at build time
	GitCommit = "unknown"

	// BuildDate is the date the binary was built
	BuildDate = "unknown"
)

// Runtime information
var (
	// GoVersion is the version of Go used to build the binary
	GoVersion = runtime.Version()

	// Platform is the OS/architecture the binary was built for
	Platform = runtime.GOOS + "/" + runtime.GOARCH
)

// GetVersionInfo returns a formatted string with full version information
func GetVersionInfo() string {
	return fmt.Sprintf(`%s
Version:    %s
Git commit: %s
Built:      %s
Go version: %s
Platform:   %s`,
		BinaryName, Version, GitCommit, BuildDate, GoVersion, Platform)
}
