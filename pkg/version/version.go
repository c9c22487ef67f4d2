// Package version exposes the application version derived from build metadata.
//
// Priority: -ldflags override > VCS info from debug.BuildInfo > "unknown" fallback.
//
// Usage:
//
//	version.Version    // "1.4.0", "a3f8c2d1" or "unknown"
//	version.Full()     // "agent-tracker/1.4.0"
package version

import "runtime/debug"

// AppName is the application name used in version strings and the MCP handshake.
const AppName = "agent-tracker"

// versionOverride is set via -ldflags "-X .../pkg/version.versionOverride=1.4.0"
// for release builds. Empty string means no override.
var versionOverride string

// Version is the release version, or the short commit hash when no release
// version was stamped into the binary.
var Version = initVersion(versionOverride, readBuildInfo)

func readBuildInfo() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
}

func initVersion(override string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if override != "" {
		return override
	}
	info, ok := buildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 8 {
				return s.Value[:8]
			}
			return s.Value
		}
	}
	return "unknown"
}

// Full returns "agent-tracker/<version>" for use in user-agent strings, logging, etc.
func Full() string {
	return AppName + "/" + Version
}
