package entities

import (
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// NotAvailable is rendered in place of values that could not be fetched.
const NotAvailable = "N/A"

// Updatable tells whether a newer release than the declared one exists.
type Updatable string

const (
	UpdatableYes     Updatable = "YES"
	UpdatableNo      Updatable = "NO"
	UpdatableUnknown Updatable = NotAvailable
)

// PackageRelease is what the registry reports for a package's "latest" dist-tag.
type PackageRelease struct {
	Name          string
	LatestVersion string
	PublishedAt   time.Time
}

// Release is the resolved half of an UpdateRecord.
type Release struct {
	LatestVersion string
	LastUpdated   time.Time
	Updatable     Updatable
}

// UpdateRecord is the outcome of resolving one dependency against the registry.
// Exactly one of Release and Failure is set.
type UpdateRecord struct {
	Name           string
	CurrentVersion string
	Release        *Release
	Failure        error
}

// NewResolvedRecord builds a record for a dependency the registry answered for.
func NewResolvedRecord(dep Dependency, release PackageRelease) UpdateRecord {
	return UpdateRecord{
		Name:           dep.Name,
		CurrentVersion: dep.Version,
		Release: &Release{
			LatestVersion: release.LatestVersion,
			LastUpdated:   release.PublishedAt,
			Updatable:     CompareVersions(dep.PinnedVersion(), release.LatestVersion),
		},
	}
}

// NewFailedRecord builds a record for a dependency whose lookup failed.
func NewFailedRecord(dep Dependency, err error) UpdateRecord {
	return UpdateRecord{
		Name:           dep.Name,
		CurrentVersion: dep.Version,
		Failure:        err,
	}
}

// Failed reports whether the lookup for this record did not succeed.
func (r UpdateRecord) Failed() bool {
	return r.Release == nil
}

// LatestVersion returns the latest version or NotAvailable.
func (r UpdateRecord) LatestVersion() string {
	if r.Failed() {
		return NotAvailable
	}
	return r.Release.LatestVersion
}

// Updatable returns the updatable flag or UpdatableUnknown.
func (r UpdateRecord) Updatable() Updatable {
	if r.Failed() {
		return UpdatableUnknown
	}
	return r.Release.Updatable
}

// LastUpdatedLabel renders the publish timestamp in loc, with time of day.
func (r UpdateRecord) LastUpdatedLabel(loc *time.Location) string {
	if r.Failed() {
		return NotAvailable
	}
	return FormatDate(r.Release.LastUpdated.In(loc), true)
}

// CompareVersions decides whether latest is an update over pinned.
// Semantic versions are compared by precedence, so a pinned version ahead of
// the "latest" tag (e.g. a prerelease) is not reported as updatable. Anything
// that is not valid semver falls back to plain string inequality.
func CompareVersions(pinned, latest string) Updatable {
	current := normalizeVersion(pinned)
	candidate := normalizeVersion(latest)

	if semver.IsValid(current) && semver.IsValid(candidate) {
		if semver.Compare(candidate, current) > 0 {
			return UpdatableYes
		}
		return UpdatableNo
	}

	if pinned != latest {
		return UpdatableYes
	}
	return UpdatableNo
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
