//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageReleaseBuilder helps create registry releases with a fluent interface.
type PackageReleaseBuilder struct {
	*testkit.BaseBuilder
	name          string
	latestVersion string
	publishedAt   time.Time
}

// NewPackageReleaseBuilder creates a new release builder with sensible defaults.
func NewPackageReleaseBuilder() *PackageReleaseBuilder {
	return &PackageReleaseBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		name:          "left-pad",
		latestVersion: "1.0.1",
		publishedAt:   time.Date(2024, time.January, 5, 10, 30, 0, 0, time.UTC),
	}
}

// WithName sets the package name.
func (b *PackageReleaseBuilder) WithName(name string) *PackageReleaseBuilder {
	b.name = name
	return b
}

// WithLatestVersion sets the version behind the "latest" dist-tag.
func (b *PackageReleaseBuilder) WithLatestVersion(version string) *PackageReleaseBuilder {
	b.latestVersion = version
	return b
}

// WithPublishedAt sets the publish time of the latest version.
func (b *PackageReleaseBuilder) WithPublishedAt(publishedAt time.Time) *PackageReleaseBuilder {
	b.publishedAt = publishedAt
	return b
}

// Build creates the release (satisfies testkit.Builder interface).
func (b *PackageReleaseBuilder) Build() interface{} {
	return b.BuildPackageRelease()
}

// BuildPackageRelease creates the release with a concrete return type.
func (b *PackageReleaseBuilder) BuildPackageRelease() entities.PackageRelease {
	return entities.PackageRelease{
		Name:          b.name,
		LatestVersion: b.latestVersion,
		PublishedAt:   b.publishedAt,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageReleaseBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "left-pad"
	b.latestVersion = "1.0.1"
	b.publishedAt = time.Date(2024, time.January, 5, 10, 30, 0, 0, time.UTC)
	return b
}

// Clone creates a deep copy of the PackageReleaseBuilder.
func (b *PackageReleaseBuilder) Clone() testkit.Builder {
	return &PackageReleaseBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:          b.name,
		latestVersion: b.latestVersion,
		publishedAt:   b.publishedAt,
	}
}
