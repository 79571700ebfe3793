// Package build carries the version stamped into the binary at link time.
package build

import "fmt"

// RepoURL is the project home.
const RepoURL = "https://github.com/bnema/palette"

// devVersion is the version of binaries built without ldflags.
const devVersion = "dev"

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsRelease reports whether the binary was stamped with a release version.
func (i Info) IsRelease() bool {
	return i.Version != "" && i.Version != devVersion
}

// ShortCommit returns the first seven characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String formats the info the way --version prints it.
func (i Info) String() string {
	if !i.IsRelease() {
		return fmt.Sprintf("palette %s (%s)", devVersion, i.GoVersion)
	}
	return fmt.Sprintf("palette %s (%s, built %s, %s)", i.Version, i.ShortCommit(), i.BuildDate, i.GoVersion)
}
