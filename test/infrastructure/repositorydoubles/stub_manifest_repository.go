//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/updatedon/internal/domain/entities"
	"github.com/rios0rios0/updatedon/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository with canned answers.
type StubManifestRepository struct {
	// --- Locate ---
	LocateErr     error
	LocatedInputs []string

	// --- Load ---
	Manifest    entities.Manifest
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Locate(_ string, path string) (string, error) {
	s.LocatedInputs = append(s.LocatedInputs, path)
	if s.LocateErr != nil {
		return "", s.LocateErr
	}
	return path, nil
}

func (s *StubManifestRepository) Load(path string) (entities.Manifest, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	return s.Manifest, s.LoadErr
}
