package repositories

import "github.com/rios0rios0/updatedon/internal/domain/entities"

// ManifestRepository reads the declared dependencies of a project.
type ManifestRepository interface {
	// Locate resolves path against workDir, returning the manifest file to load.
	Locate(workDir, path string) (string, error)

	// Load parses the manifest at path, keeping the declaration order of each section.
	Load(path string) (entities.Manifest, error)
}
