package build

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	tests := []struct {
		name string
		in   Info
		want Info
	}{
		{
			name: "linker values win",
			in:   Info{Version: "v1.0.0", Commit: "abc", BuildDate: "today"},
			want: Info{Version: "v1.0.0", Commit: "abc", BuildDate: "today"},
		},
		{
			name: "placeholders fall back",
			in:   Info{Version: "dev", Commit: "unknown"},
			want: Info{Version: "v0.3.0", Commit: "0123456789ab", BuildDate: "2026-10-01T12:00:00Z"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withBuildInfo(bi))
		})
	}
}

func TestWithBuildInfo_DevelVersionIgnored(t *testing.T) {
	got := Info{Version: "dev"}.withBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, "dev", got.Version)
}

func TestCurrent_SetsGoVersion(t *testing.T) {
	assert.NotEmpty(t, Current("v1", "c", "d").GoVersion)
}
