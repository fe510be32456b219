package version

import (
	"runtime/debug"
)

// Version is overridden at link time with -ldflags "-X pragyan-remote/internal/pkg/version.Version=v1.2.3".
var Version = "dev"

type buildInfo struct {
	Version   string
	Commit    string
	Time      string
	Dirty     bool
	GoVersion string
}

// GetBuildInfo returns the version plus the VCS metadata stamped by the go toolchain.
func GetBuildInfo() buildInfo {
	info := buildInfo{Version: Version, Commit: "none", Time: "unknown"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Commit = setting.Value
		case "vcs.time":
			info.Time = setting.Value
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		}
	}
	return info
}
