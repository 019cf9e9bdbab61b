package symdiff

import "runtime/debug"

// Version reports the module version recorded in the build info, or
// "(devel)" for source builds.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
