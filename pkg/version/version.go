// Package version exposes the leafco2 build version.
package version

import "github.com/Masterminds/semver/v3"

// version is overridden at build time with
// -ldflags "-X github.com/rshade/leafco2/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Set via ldflags.
var version = "0.1.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// IsRelease reports whether the build version is a valid semver without a
// prerelease suffix.
func IsRelease() bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// DisplayVersion returns the string shown by --version. Builds that are not
// tagged releases are marked as development builds.
func DisplayVersion() string {
	if IsRelease() {
		return version
	}
	return version + " (development build)"
}
