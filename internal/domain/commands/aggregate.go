package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
	"github.com/rios0rios0/updatedon/internal/domain/repositories"
)

// ResolveDependency looks dep up on the registry. A failed lookup is logged
// and turned into a failed record; it never aborts the caller.
func ResolveDependency(
	ctx context.Context,
	registry repositories.RegistryRepository,
	dep entities.Dependency,
) entities.UpdateRecord {
	release, err := registry.FetchRelease(ctx, dep.Name)
	if err != nil {
		logger.Warnf("Error fetching %s: %v", dep.Name, err)
		return entities.NewFailedRecord(dep, err)
	}

	logger.Debugf("[%s] %s latest is %s", registry.Name(), dep.Name, release.LatestVersion)
	return entities.NewResolvedRecord(dep, release)
}

// AggregateUpdates resolves every dependency that existing does not already
// hold, adds the records to it and returns it. Lookups run concurrently, at
// most limit at a time when limit is positive, and the call returns once all
// of them have settled. Each name is looked up at most once.
func AggregateUpdates(
	ctx context.Context,
	registry repositories.RegistryRepository,
	deps []entities.Dependency,
	existing *entities.Updates,
	limit int,
) *entities.Updates {
	updates := existing
	if updates == nil {
		updates = entities.NewUpdates()
	}

	pending := make([]entities.Dependency, 0, len(deps))
	queued := make(map[string]struct{}, len(deps))
	for _, dep := range deps {
		if _, ok := queued[dep.Name]; ok || updates.Has(dep.Name) {
			continue
		}
		queued[dep.Name] = struct{}{}
		pending = append(pending, dep)
	}

	logger.Infof("Fetching %d package(s) from the %s registry...", len(pending), registry.Name())

	// every task owns exactly one slot of results
	results := make([]entities.UpdateRecord, len(pending))

	var group errgroup.Group
	if limit > 0 {
		group.SetLimit(limit)
	}
	for i, dep := range pending {
		group.Go(func() error {
			results[i] = ResolveDependency(ctx, registry, dep)
			return nil
		})
	}
	_ = group.Wait() // tasks never return errors

	for _, record := range results {
		updates.Add(record)
	}
	return updates
}
