package repositories

import (
	manifestRepo "github.com/rios0rios0/updatedon/internal/infrastructure/repositories/manifest"
	npmRepo "github.com/rios0rios0/updatedon/internal/infrastructure/repositories/npm"
	domainRepos "github.com/rios0rios0/updatedon/internal/domain/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register registry catalog with all registry factories
	if err := container.Provide(func() *RegistryCatalog {
		catalog := NewRegistryCatalog()
		catalog.Register("npm", npmRepo.NewNpmRegistryRepository)
		return catalog
	}); err != nil {
		return err
	}

	// Register manifest catalog with all manifest readers
	if err := container.Provide(func() *ManifestCatalog {
		catalog := NewManifestCatalog()
		catalog.Register(manifestRepo.NewPackageJSONRepository())
		catalog.Register(manifestRepo.NewPackageYAMLRepository())
		return catalog
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ManifestCatalog) domainRepos.ManifestRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
