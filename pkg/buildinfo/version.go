// Package buildinfo carries the flierkit build stamp.
//
// The variables are set with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/flierkit/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/flierkit/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build stamp as reported by the API health check.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"built"`
}

// Get returns the current build stamp.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// Short renders the stamp as "version (commit)", dropping an unknown commit.
func (i Info) Short() string {
	if i.Commit == "" || i.Commit == "none" {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}

// Template returns the cobra version template.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} %s\nbuilt: %s\n", i.Short(), i.Date)
}
