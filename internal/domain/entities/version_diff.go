package entities

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// numericPrefix matches the dotted numeric part of a Maven version,
// dropping qualifiers such as ".GA" or ".Final".
var numericPrefix = regexp.MustCompile(`^\d+(\.\d+){0,2}`)

// VersionDiff represents the difference between a current and a new version.
type VersionDiff struct {
	Current string
	New     string
	IsMajor bool
	IsMinor bool
	IsPatch bool
}

// AnalyzeVersionDiff classifies a version change. Versions that cannot be
// reduced to semver produce a diff with every flag unset.
func AnalyzeVersionDiff(current, newVersion string) VersionDiff {
	diff := VersionDiff{Current: current, New: newVersion}

	currentNorm := normalizeVersion(current)
	newNorm := normalizeVersion(newVersion)
	if !semver.IsValid(currentNorm) || !semver.IsValid(newNorm) {
		return diff
	}

	switch {
	case semver.Major(currentNorm) != semver.Major(newNorm):
		diff.IsMajor = true
	case semver.MajorMinor(currentNorm) != semver.MajorMinor(newNorm):
		diff.IsMinor = true
	case semver.Compare(currentNorm, newNorm) != 0:
		diff.IsPatch = true
	}
	return diff
}

// Label returns a short description of the change, or "" when unknown.
func (d VersionDiff) Label() string {
	switch {
	case d.IsMajor:
		return "major version upgrade"
	case d.IsMinor:
		return "minor version upgrade"
	case d.IsPatch:
		return "patch version upgrade"
	default:
		return ""
	}
}

// normalizeVersion turns "8.0.0.GA" into "v8.0.0" for semver comparison.
func normalizeVersion(version string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	numeric := numericPrefix.FindString(version)
	if numeric == "" {
		return ""
	}
	return "v" + numeric
}
