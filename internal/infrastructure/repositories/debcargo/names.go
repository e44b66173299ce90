package debcargo

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Debnormalize turns a crate name into the form used in Debian package names.
func Debnormalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// UnmangleDebcargoVersion reverts the "~" debcargo writes for "-" in pre-release versions.
func UnmangleDebcargoVersion(version string) string {
	return strings.ReplaceAll(version, "~", "-")
}

// SemverPair returns "major.minor" of a crate version.
func SemverPair(version string) (string, bool) {
	canonical, ok := canonicalVersion(version)
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(semver.MajorMinor(canonical), "v"), true
}

// DebcargoBinaryName returns the library package name for a crate and version/feature suffix.
func DebcargoBinaryName(crateName, suffix string) string {
	return "librust-" + Debnormalize(crateName) + suffix + "-dev"
}

// versionSuffixes returns "-major", "-major.minor" and "-major.minor.patch".
func versionSuffixes(version string) ([]string, bool) {
	canonical, ok := canonicalVersion(version)
	if !ok {
		return nil, false
	}
	release := strings.TrimSuffix(canonical, semver.Build(canonical))
	release = strings.TrimSuffix(release, semver.Prerelease(release))
	return []string{
		"-" + strings.TrimPrefix(semver.Major(canonical), "v"),
		"-" + strings.TrimPrefix(semver.MajorMinor(canonical), "v"),
		"-" + strings.TrimPrefix(release, "v"),
	}, true
}

func canonicalVersion(version string) (string, bool) {
	v := "v" + UnmangleDebcargoVersion(strings.TrimPrefix(version, "v"))
	if !semver.IsValid(v) {
		return "", false
	}
	return semver.Canonical(v), true
}
