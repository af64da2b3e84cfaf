// Package version exposes the build version of the listbox binary.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// version is overridden at build time with -ldflags "-X .../internal/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker.
var version = "0.1.0-dev"

// GetVersion returns the raw build version string.
func GetVersion() string {
	return version
}

// Parse parses the build version as a semantic version.
func Parse() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing build version %q: %w", version, err)
	}
	return v, nil
}

// IsRelease reports whether the build version is a valid semantic version without a prerelease tag.
func IsRelease() bool {
	v, err := Parse()
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// Describe classifies v as "release", "prerelease <tag>" or "development".
func Describe(v string) string {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return "development"
	}
	if pre := sv.Prerelease(); pre != "" {
		return "prerelease " + pre
	}
	return "release"
}
