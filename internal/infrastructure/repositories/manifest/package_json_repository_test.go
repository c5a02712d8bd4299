//go:build unit

package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
	"github.com/rios0rios0/updatedon/internal/infrastructure/repositories/manifest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPackageJSONRepositoryLoad(t *testing.T) {
	t.Parallel()

	t.Run("should read both sections in declaration order", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "package.json", `{
	"name": "demo",
	"version": "1.0.0",
	"scripts": {"test": "jest"},
	"dependencies": {
		"zod": "^3.22.0",
		"axios": "^1.6.0",
		"left-pad": "^1.0.0"
	},
	"devDependencies": {
		"typescript": "~5.3.0",
		"@types/node": "^20.0.0"
	},
	"files": ["dist"]
}`)
		repo := manifest.NewPackageJSONRepository()

		// when
		result, err := repo.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Dependency{
			{Name: "zod", Version: "^3.22.0"},
			{Name: "axios", Version: "^1.6.0"},
			{Name: "left-pad", Version: "^1.0.0"},
		}, result.Dependencies)
		assert.Equal(t, []entities.Dependency{
			{Name: "typescript", Version: "~5.3.0"},
			{Name: "@types/node", Version: "^20.0.0"},
		}, result.DevDependencies)
	})

	t.Run("should accept a manifest without dependency sections", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "package.json", `{"name": "empty", "dependencies": null}`)
		repo := manifest.NewPackageJSONRepository()

		// when
		result, err := repo.Load(path)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Dependencies)
		assert.Empty(t, result.DevDependencies)
	})

	t.Run("should fail when a version is not a string", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "package.json", `{"dependencies": {"left-pad": 1}}`)
		repo := manifest.NewPackageJSONRepository()

		// when
		_, err := repo.Load(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the document is not an object", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "package.json", `["left-pad"]`)
		repo := manifest.NewPackageJSONRepository()

		// when
		_, err := repo.Load(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewPackageJSONRepository()

		// when
		_, err := repo.Load(filepath.Join(t.TempDir(), "package.json"))

		// then
		require.Error(t, err)
	})
}

func TestPackageYAMLRepositoryLoad(t *testing.T) {
	t.Parallel()

	t.Run("should read both sections in declaration order", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "package.yaml", `name: demo
dependencies:
  zod: ^3.22.0
  axios: ^1.6.0
devDependencies:
  "@types/node": ^20.0.0
`)
		repo := manifest.NewPackageYAMLRepository()

		// when
		result, err := repo.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Dependency{
			{Name: "zod", Version: "^3.22.0"},
			{Name: "axios", Version: "^1.6.0"},
		}, result.Dependencies)
		assert.Equal(t, []entities.Dependency{
			{Name: "@types/node", Version: "^20.0.0"},
		}, result.DevDependencies)
	})

	t.Run("should fail when a section is not a mapping", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "package.yaml", "dependencies:\n  - zod\n")
		repo := manifest.NewPackageYAMLRepository()

		// when
		_, err := repo.Load(path)

		// then
		require.Error(t, err)
	})

	t.Run("should accept an empty document", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "package.yaml", "")
		repo := manifest.NewPackageYAMLRepository()

		// when
		result, err := repo.Load(path)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Dependencies)
	})
}
