// Package version derives the build identity reported in logs, the
// /health endpoints, and gRPC user-agent strings.
//
// Resolution order: -ldflags override, then vcs.revision from the embedded
// build info, then "dev" for go test and non-git builds.
package version

import "runtime/debug"

// AppName prefixes every version string.
const AppName = "maestro"

// gitCommitOverride is injected with -ldflags for container builds where
// the .git directory is not present.
var gitCommitOverride string

// GitCommit is the short commit hash, or "dev" when unknown.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return short(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "maestro/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
