// Package version reports the build of the keymanager binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set through linker options, e.g. -X github.com/prysmaticlabs/keymanager-cli/runtime/version.gitTag=v1.0.0.
var (
	gitCommit = "Local build"
	buildDate = "Moments ago"
	gitTag    = "Unknown"
)

// Version is the string printed by --version.
func Version() string {
	return fmt.Sprintf("%s. Built at: %s", BuildData(), buildDate)
}

// BuildData identifies the build as keymanager/<tag>/<commit>. It doubles as the User-Agent
// of keymanager API requests. Builds without linker values fall back to the commit the Go
// toolchain stamped into the binary, if any.
func BuildData() string {
	commit := gitCommit
	if commit == "Local build" {
		if rev := vcsRevision(); rev != "" {
			commit = rev
		}
	}
	return fmt.Sprintf("keymanager/%s/%s", gitTag, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
