// Package version provides version information for opponentgen.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// Get returns the version information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String renders info for the version command.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "opponentgen version %s\n", i.Version)
	fmt.Fprintf(&b, "  Commit:    %s\n", i.GitCommit)
	fmt.Fprintf(&b, "  Built:     %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  Go:        %s\n", i.GoVersion)
	return b.String()
}
