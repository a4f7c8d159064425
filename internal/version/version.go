package version

import (
	"runtime/debug"
)

// Version is the module version, or the VCS revision for development builds.
var Version = func() (version string) {
	version = "unknown"
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		version = v
		return
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			version = s.Value
			return
		}
	}
	return
}()
