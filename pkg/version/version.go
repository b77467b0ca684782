// Package version reports the build version of pagetable.
package version

// Set at build time with -ldflags "-X github.com/rshade/pagetable/pkg/version.version=...".
//
//nolint:gochecknoglobals // Overwritten by the linker.
var (
	version = "dev"
	commit  = ""
)

// GetVersion returns the version string, with the short commit appended when known.
func GetVersion() string {
	if commit == "" {
		return version
	}
	short := commit
	if len(short) > 7 { //nolint:mnd // Short git hash length.
		short = short[:7]
	}
	return version + " (" + short + ")"
}
