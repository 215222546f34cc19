package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFlatwasmVersion(t *testing.T) {
	// Test binaries have no main module version.
	require.Equal(t, Default, GetFlatwasmVersion())
}

func Test_versionOf(t *testing.T) {
	tests := []struct {
		name     string
		info     *debug.BuildInfo
		expected string
	}{
		{
			name:     "main module",
			info:     &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "v1.2.3"}},
			expected: "v1.2.3",
		},
		{
			name:     "local build",
			info:     &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "(devel)"}},
			expected: Default,
		},
		{
			name: "dependency",
			info: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/app"},
				Deps: []*debug.Module{{Path: "golang.org/x/sync", Version: "v0.7.0"}, {Path: modulePath, Version: "v0.1.0"}},
			},
			expected: "v0.1.0",
		},
		{
			name: "replaced dependency",
			info: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/app"},
				Deps: []*debug.Module{{
					Path:    modulePath,
					Version: "v0.1.0",
					Replace: &debug.Module{Path: "example.com/fork", Version: "v0.0.0-20220818123113-1948909ec0b1"},
				}},
			},
			expected: "v0.0.0-20220818123113-1948909ec0b1",
		},
		{
			name:     "not a dependency",
			info:     &debug.BuildInfo{Main: debug.Module{Path: "example.com/app"}},
			expected: Default,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, versionOf(tc.info))
		})
	}
}
