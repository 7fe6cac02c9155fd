// Package version holds build information for the browsers-match command and
// a reusable cobra command that prints it.
package version

import (
	"fmt"
	"runtime"
)

// Info holds version information for a binary.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	GoVersion string `json:"goVersion"`
}

// New creates a new Info with default values. Version, BuildDate and
// GitCommit are expected to be overridden via ldflags at build time.
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   "0.0.0-dev",
		BuildDate: "unknown",
		GitCommit: "unknown",
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
