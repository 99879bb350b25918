// Package build describes the running binary.
package build

import (
	"runtime"
	"runtime/debug"
)

// Info is what `dockyard about` prints.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Current combines the ldflags values with the module build info. Values
// left empty or at "dev"/"unknown" by the linker fall back to the VCS
// stamps that `go build` records.
func Current(version, commit, buildDate string) Info {
	info := Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = info.withBuildInfo(bi)
	}
	return info
}

func (i Info) withBuildInfo(bi *debug.BuildInfo) Info {
	if unset(i.Version) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if unset(i.Commit) {
				i.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if unset(i.BuildDate) {
				i.BuildDate = s.Value
			}
		}
	}
	return i
}

func unset(s string) bool { return s == "" || s == "dev" || s == "unknown" }

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/dockyard"
}
