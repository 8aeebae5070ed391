package app

import "fmt"

var (
	Version = "0.00"
	Dev     = ""
	Commit  = ""
)

// FullVersion returns the version including dev and commit suffixes
// set at build time through -ldflags.
func FullVersion() string {
	version := Version

	if Dev != "" {
		version += "-dev." + Commit
	}

	if Commit != "" && Dev == "" {
		version += " (" + Commit + ")"
	}

	return version
}

func PrintVersion() {
	fmt.Printf("%s %s\n", Name(), FullVersion())
}
