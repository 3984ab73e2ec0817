// Package version reports the segtimer build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/segtimer/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/segtimer/internal/version.Commit=abc1234"
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		Version, Commit = fromBuildInfo(info, Version, Commit)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills whichever of version and commit are empty.
// A module version from "go install ...@vX" wins over VCS data.
func fromBuildInfo(info *debug.BuildInfo, version, commit string) (string, string) {
	if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}

	if version == "" {
		if vcsTime := settings["vcs.time"]; len(vcsTime) >= 10 {
			version = "dev-" + strings.ReplaceAll(vcsTime[:10], "-", "")
		}
	}

	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent is the User-Agent the CLI sends to devices
func UserAgent() string {
	return "segtimer/" + Version
}
