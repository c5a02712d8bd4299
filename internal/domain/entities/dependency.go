package entities

import "strings"

// Dependency represents a package declared in a project manifest.
type Dependency struct {
	Name    string // Package name as published on the registry
	Version string // Declared version range (e.g. "^1.0.0")
}

// PinnedVersion returns the declared version with its range marker stripped,
// so "^1.2.3" and "~1.2.3" both become "1.2.3".
func (d Dependency) PinnedVersion() string {
	return strings.TrimLeft(strings.TrimSpace(d.Version), "^~=v<> ")
}

// Manifest holds the dependency sections of a project manifest in declaration order.
type Manifest struct {
	Dependencies    []Dependency
	DevDependencies []Dependency
}

// Merged returns the union of regular and development dependencies.
// A development entry never overrides a regular one with the same name,
// and the result keeps the order in which each name was first declared.
func (m Manifest) Merged(includeDev bool) []Dependency {
	merged := make([]Dependency, 0, len(m.Dependencies)+len(m.DevDependencies))
	seen := make(map[string]struct{}, cap(merged))

	appendUnique := func(deps []Dependency) {
		for _, dep := range deps {
			if _, ok := seen[dep.Name]; ok {
				continue
			}
			seen[dep.Name] = struct{}{}
			merged = append(merged, dep)
		}
	}

	appendUnique(m.Dependencies)
	if includeDev {
		appendUnique(m.DevDependencies)
	}
	return merged
}
