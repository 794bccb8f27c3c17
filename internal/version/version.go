// Package version holds build information for the appversion CLI. The
// variables are set with -ldflags at build time.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   = "0.0.0"
	Revision  = ""
	Branch    = ""
	BuildUser = ""
	BuildDate = ""
	GoVersion = runtime.Version()
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		if Revision == "" {
			Revision = "unknown"
		}

		return
	}

	if Version == "0.0.0" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Revision != "" {
		return
	}

	Revision = "unknown"

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// Info returns a one-line summary of the build.
func Info() string {
	return fmt.Sprintf("(version=%s, branch=%s, revision=%s)", Version, Branch, Revision)
}

// BuildContext returns the toolchain and build metadata.
func BuildContext() string {
	return fmt.Sprintf("(go=%s, platform=%s/%s, user=%s, date=%s)",
		GoVersion, runtime.GOOS, runtime.GOARCH, BuildUser, BuildDate)
}
