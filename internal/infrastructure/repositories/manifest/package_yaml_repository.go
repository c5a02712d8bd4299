package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
)

// PackageYAMLRepository reads package.yaml manifests (as used by pnpm).
type PackageYAMLRepository struct{}

// NewPackageYAMLRepository creates a package.yaml reader.
func NewPackageYAMLRepository() *PackageYAMLRepository {
	return &PackageYAMLRepository{}
}

func (r *PackageYAMLRepository) Extensions() []string { return []string{".yaml", ".yml"} }

// Load parses the dependency sections of a package.yaml file.
func (r *PackageYAMLRepository) Load(path string) (entities.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	manifest, err := parsePackageYAML(data)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to parse manifest %q: %w", path, err)
	}
	return manifest, nil
}

// parsePackageYAML decodes into a node tree, which keeps mapping order.
func parsePackageYAML(data []byte) (entities.Manifest, error) {
	var manifest entities.Manifest

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return manifest, err
	}
	if len(doc.Content) == 0 {
		return manifest, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return manifest, errors.New("manifest root must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]

		var err error
		switch key {
		case sectionDependencies:
			manifest.Dependencies, err = parseYAMLSection(value, key)
		case sectionDevDependencies:
			manifest.DevDependencies, err = parseYAMLSection(value, key)
		}
		if err != nil {
			return manifest, err
		}
	}

	return manifest, nil
}

func parseYAMLSection(node *yaml.Node, section string) ([]entities.Dependency, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%q must be a mapping (line %d)", section, node.Line)
	}

	deps := make([]entities.Dependency, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, version := node.Content[i], node.Content[i+1]
		if version.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s.%s: version must be a string (line %d)", section, name.Value, version.Line)
		}
		deps = append(deps, entities.Dependency{Name: name.Value, Version: version.Value})
	}
	return deps, nil
}
