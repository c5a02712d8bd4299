package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
	"github.com/rios0rios0/updatedon/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/updatedon/internal/infrastructure/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) ([]string, error)
}

// CheckOptions holds runtime options for a single check.
type CheckOptions struct {
	Target  entities.Target
	WorkDir string // directory the manifest path is resolved against
}

// CheckCommand loads the manifest, resolves every dependency against the
// registry and keeps those released on the requested date.
type CheckCommand struct {
	registryCatalog *infraRepos.RegistryCatalog
	manifests       repositories.ManifestRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	registryCatalog *infraRepos.RegistryCatalog,
	manifests repositories.ManifestRepository,
) *CheckCommand {
	return &CheckCommand{
		registryCatalog: registryCatalog,
		manifests:       manifests,
	}
}

// Execute returns the display lines of the dependencies matching opts.Target.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) ([]string, error) {
	manifestPath, err := it.manifests.Locate(opts.WorkDir, settings.Manifest)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Reading manifest %s", manifestPath)

	manifest, err := it.manifests.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	registry, err := it.registryCatalog.Get(settings.Registry, settings.RegistryURL, settings.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry client: %w", err)
	}

	deps := manifest.Merged(settings.IncludeDev)
	updates := AggregateUpdates(ctx, registry, deps, entities.NewUpdates(), settings.Concurrency)

	lines := entities.FilterUpdates(updates, opts.Target, settings.Location)
	logger.Debugf("%d of %d package(s) match %s", len(lines), updates.Len(), opts.Target.Label())
	return lines, nil
}
