// Package version holds build metadata injected with -ldflags.
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info is the build metadata in structured form.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
}

// Get returns the metadata of the running binary.
func Get() Info {
	return Info{Version: Version, Commit: Commit, BuildDate: BuildDate}
}

func (i Info) String() string {
	return fmt.Sprintf("scenetree %s (commit: %s, built: %s)", i.Version, i.Commit, i.BuildDate)
}
