package repositories

import (
	"fmt"
	"sort"
	"time"

	domainRepos "github.com/rios0rios0/updatedon/internal/domain/repositories"
)

// RegistryFactory is a constructor function that creates a RegistryRepository
// for a base URL and a per-request timeout.
type RegistryFactory func(baseURL string, timeout time.Duration) domainRepos.RegistryRepository

// RegistryCatalog manages all registered package registry implementations.
type RegistryCatalog struct {
	registries map[string]RegistryFactory
}

// NewRegistryCatalog creates an empty registry catalog.
func NewRegistryCatalog() *RegistryCatalog {
	return &RegistryCatalog{
		registries: make(map[string]RegistryFactory),
	}
}

// Register adds a registry factory under the given name (e.g. "npm").
func (c *RegistryCatalog) Register(name string, factory RegistryFactory) {
	c.registries[name] = factory
}

// Get returns a configured registry client for the given name.
func (c *RegistryCatalog) Get(
	name, baseURL string,
	timeout time.Duration,
) (domainRepos.RegistryRepository, error) {
	factory, ok := c.registries[name]
	if !ok {
		return nil, fmt.Errorf("unknown registry type: %q", name)
	}
	return factory(baseURL, timeout), nil
}

// Names returns the sorted list of registered registry names.
func (c *RegistryCatalog) Names() []string {
	names := make([]string, 0, len(c.registries))
	for name := range c.registries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
