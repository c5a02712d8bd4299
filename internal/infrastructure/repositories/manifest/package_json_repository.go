package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
)

const (
	sectionDependencies    = "dependencies"
	sectionDevDependencies = "devDependencies"
)

// PackageJSONRepository reads npm package.json manifests.
type PackageJSONRepository struct{}

// NewPackageJSONRepository creates a package.json reader.
func NewPackageJSONRepository() *PackageJSONRepository {
	return &PackageJSONRepository{}
}

func (r *PackageJSONRepository) Extensions() []string { return []string{".json"} }

// Load parses the dependency sections of a package.json file.
func (r *PackageJSONRepository) Load(path string) (entities.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	manifest, err := parsePackageJSON(data)
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("failed to parse manifest %q: %w", path, err)
	}
	return manifest, nil
}

// parsePackageJSON walks the token stream instead of decoding into a map so
// that dependencies come out in the order the manifest declares them.
func parsePackageJSON(data []byte) (entities.Manifest, error) {
	var manifest entities.Manifest

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return manifest, err
	}

	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return manifest, err
		}

		switch key {
		case sectionDependencies:
			manifest.Dependencies, err = parseSection(dec, key)
		case sectionDevDependencies:
			manifest.DevDependencies, err = parseSection(dec, key)
		default:
			var skip json.RawMessage
			err = dec.Decode(&skip)
		}
		if err != nil {
			return manifest, err
		}
	}

	return manifest, expectDelim(dec, '}')
}

func parseSection(dec *json.Decoder, section string) ([]entities.Dependency, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil // "dependencies": null
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%q must be an object", section)
	}

	var deps []entities.Dependency
	for dec.More() {
		name, keyErr := readKey(dec)
		if keyErr != nil {
			return nil, keyErr
		}

		var version string
		if decodeErr := dec.Decode(&version); decodeErr != nil {
			return nil, fmt.Errorf("%s.%s: version must be a string: %w", section, name, decodeErr)
		}
		deps = append(deps, entities.Dependency{Name: name, Version: version})
	}

	return deps, expectDelim(dec, '}')
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
