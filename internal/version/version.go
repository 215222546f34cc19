// Package version reports the version of flatwasm embedded in the running binary.
package version

import (
	"runtime/debug"
	"strings"
)

// Default is returned by GetFlatwasmVersion when the build information has no version,
// for example in tests or when built from a checkout with `go build`.
const Default = "dev"

const modulePath = "github.com/flatwasm/flatwasm"

// GetFlatwasmVersion returns the version of the flatwasm module that the running binary was built with.
func GetFlatwasmVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Default
	}
	return versionOf(info)
}

func versionOf(info *debug.BuildInfo) (ret string) {
	if info.Main.Path == modulePath {
		ret = info.Main.Version
	} else {
		// Imported as a library.
		for _, dep := range info.Deps {
			if dep.Path != modulePath {
				continue
			}
			ret = dep.Version
			if dep.Replace != nil && dep.Replace.Version != "" {
				ret = dep.Replace.Version
			}
			break
		}
	}

	// "(devel)" is the main module version of local builds.
	if ret == "" || strings.HasPrefix(ret, "(") {
		return Default
	}
	return ret
}
