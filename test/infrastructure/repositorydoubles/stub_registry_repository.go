//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
	"github.com/rios0rios0/updatedon/internal/domain/repositories"
)

// SpyRegistryRepository implements repositories.RegistryRepository as a configurable spy.
// It is safe for concurrent use, since the aggregator calls it from many goroutines.
type SpyRegistryRepository struct {
	// --- identity ---
	RegistryName string

	// --- FetchRelease ---
	Releases map[string]entities.PackageRelease // name -> release
	Errors   map[string]error                   // name -> error

	mu         sync.Mutex
	fetchCalls []string
}

var _ repositories.RegistryRepository = (*SpyRegistryRepository)(nil)

func (s *SpyRegistryRepository) Name() string {
	if s.RegistryName == "" {
		return "spy"
	}
	return s.RegistryName
}

func (s *SpyRegistryRepository) FetchRelease(
	_ context.Context,
	name string,
) (entities.PackageRelease, error) {
	s.mu.Lock()
	s.fetchCalls = append(s.fetchCalls, name)
	s.mu.Unlock()

	if err, ok := s.Errors[name]; ok {
		return entities.PackageRelease{}, err
	}
	if release, ok := s.Releases[name]; ok {
		return release, nil
	}
	return entities.PackageRelease{}, fmt.Errorf("package %q not found", name)
}

// FetchCalls returns the names requested so far, in call order.
func (s *SpyRegistryRepository) FetchCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.fetchCalls...)
}
