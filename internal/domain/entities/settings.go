package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRegistry    = "npm"
	DefaultRegistryURL = "https://registry.npmjs.org"
	DefaultManifest    = "package.json"
)

// Settings is the runtime configuration for updatedon.
type Settings struct {
	Registry    string // registry client type, see the infrastructure catalog
	RegistryURL string
	Timeout     time.Duration // zero means requests never time out
	Manifest    string
	Concurrency int // zero means every lookup runs at once
	Location    *time.Location
	IncludeDev  bool
}

// fileSettings is the on-disk shape shared by the YAML, TOML and HCL formats.
type fileSettings struct {
	Registry    string `yaml:"registry"     toml:"registry"     hcl:"registry,optional"`
	RegistryURL string `yaml:"registry_url" toml:"registry_url" hcl:"registry_url,optional"`
	Timeout     string `yaml:"timeout"      toml:"timeout"      hcl:"timeout,optional"`
	Manifest    string `yaml:"manifest"     toml:"manifest"     hcl:"manifest,optional"`
	Concurrency int    `yaml:"concurrency"  toml:"concurrency"  hcl:"concurrency,optional"`
	Timezone    string `yaml:"timezone"     toml:"timezone"     hcl:"timezone,optional"`
	IncludeDev  *bool  `yaml:"include_dev"  toml:"include_dev"  hcl:"include_dev,optional"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Registry:    DefaultRegistry,
		RegistryURL: DefaultRegistryURL,
		Manifest:    DefaultManifest,
		Location:    time.Local,
		IncludeDev:  true,
	}
}

// NewSettings reads and parses a configuration file. The format is picked
// from the file extension: .yaml/.yml, .toml or .hcl.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var raw fileSettings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".hcl":
		err = hclsimple.Decode(filepath.Base(path), data, nil, &raw)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return raw.toSettings()
}

// LoadSettings loads the file at path, or the first auto-detected config file
// when path is empty. Without any config file the defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return DefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".updatedon.yaml",
		".updatedon.yml",
		"updatedon.yaml",
		"updatedon.yml",
		"updatedon.toml",
		"updatedon.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func (raw fileSettings) toSettings() (*Settings, error) {
	settings := DefaultSettings()

	if raw.Registry != "" {
		settings.Registry = raw.Registry
	}
	if raw.RegistryURL != "" {
		settings.RegistryURL = strings.TrimRight(expandEnv(raw.RegistryURL), "/")
	}
	if raw.Manifest != "" {
		settings.Manifest = raw.Manifest
	}
	if raw.IncludeDev != nil {
		settings.IncludeDev = *raw.IncludeDev
	}
	settings.Concurrency = raw.Concurrency

	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		settings.Timeout = timeout
	}

	if raw.Timezone != "" {
		loc, err := time.LoadLocation(raw.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", raw.Timezone, err)
		}
		settings.Location = loc
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required configuration values.
func (s *Settings) validate() error {
	if s.Registry == "" {
		return errors.New("registry must not be empty")
	}
	if s.RegistryURL == "" {
		return errors.New("registry_url must not be empty")
	}
	if !strings.HasPrefix(s.RegistryURL, "http://") && !strings.HasPrefix(s.RegistryURL, "https://") {
		return fmt.Errorf("registry_url %q must be an http(s) URL", s.RegistryURL)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", s.Timeout)
	}
	if s.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", s.Concurrency)
	}
	return nil
}
