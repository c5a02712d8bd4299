package repositories

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
	domainRepos "github.com/rios0rios0/updatedon/internal/domain/repositories"
	manifestRepo "github.com/rios0rios0/updatedon/internal/infrastructure/repositories/manifest"
)

// ManifestReader parses one manifest format.
type ManifestReader interface {
	// Extensions lists the file extensions this reader accepts (e.g. ".json").
	Extensions() []string

	// Load parses the manifest at path.
	Load(path string) (entities.Manifest, error)
}

// ManifestCatalog dispatches manifest loading to the reader registered for
// the file extension. It implements domainRepos.ManifestRepository itself.
type ManifestCatalog struct {
	readers map[string]ManifestReader
}

var _ domainRepos.ManifestRepository = (*ManifestCatalog)(nil)

// NewManifestCatalog creates an empty manifest catalog.
func NewManifestCatalog() *ManifestCatalog {
	return &ManifestCatalog{
		readers: make(map[string]ManifestReader),
	}
}

// Register adds a reader under each of its extensions.
func (c *ManifestCatalog) Register(reader ManifestReader) {
	for _, ext := range reader.Extensions() {
		c.readers[strings.ToLower(ext)] = reader
	}
}

// Load parses the manifest at path with the reader matching its extension.
func (c *ManifestCatalog) Load(path string) (entities.Manifest, error) {
	ext := strings.ToLower(filepath.Ext(path))
	reader, ok := c.readers[ext]
	if !ok {
		return entities.Manifest{}, fmt.Errorf("unsupported manifest %q: no reader for %q", path, ext)
	}
	return reader.Load(path)
}

// Locate resolves path against workDir, falling back to the enclosing Git worktree root.
func (c *ManifestCatalog) Locate(workDir, path string) (string, error) {
	return manifestRepo.Locate(workDir, path)
}
