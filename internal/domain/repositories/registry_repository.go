package repositories

import (
	"context"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
)

// RegistryRepository abstracts a package registry (npm or a compatible mirror).
type RegistryRepository interface {
	// Name returns the registry identifier (e.g. "npm").
	Name() string

	// FetchRelease performs one lookup for the package and returns the version
	// behind its "latest" dist-tag together with that version's publish time.
	// Network failures, non-2xx statuses and malformed documents are errors.
	FetchRelease(ctx context.Context, name string) (entities.PackageRelease, error)
}
