// Package version reports the build version of the slashpath binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version and Revision may be overridden with -ldflags -X.
var (
	Version  = "0.0.0-dev"
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if v := info.Main.Version; v != "" && v != "(devel)" && Version == "0.0.0-dev" {
		Version = strings.TrimPrefix(v, "v")
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && Revision == "unknown" {
			Revision = s.Value
		}
	}
}

// String returns "<version>+<revision>".
func String() string {
	return fmt.Sprintf("%s+%s", Version, Revision)
}
