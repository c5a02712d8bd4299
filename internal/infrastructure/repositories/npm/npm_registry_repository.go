package npm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/updatedon/internal/domain/entities"
	"github.com/rios0rios0/updatedon/internal/domain/repositories"
)

const (
	registryName = "npm"
	latestTag    = "latest"
)

var (
	errMissingLatestTag = errors.New("registry document has no \"latest\" dist-tag")
	errMissingTimestamp = errors.New("registry document has no publish time for the latest version")
)

// NpmRegistryRepository implements repositories.RegistryRepository against
// the npm registry HTTP API (or any mirror serving the same documents).
type NpmRegistryRepository struct {
	baseURL string
	client  *http.Client
}

// NewNpmRegistryRepository creates a registry client for baseURL. A zero
// timeout leaves requests bounded only by the caller's context.
func NewNpmRegistryRepository(baseURL string, timeout time.Duration) repositories.RegistryRepository {
	return &NpmRegistryRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *NpmRegistryRepository) Name() string { return registryName }

// packument is the subset of the registry's package document we read.
type packument struct {
	DistTags map[string]string `json:"dist-tags"`
	Time     map[string]any    `json:"time"` // "unpublished" holds an object instead of a string
}

// FetchRelease requests the package document for name and extracts the
// "latest" dist-tag along with its publish time.
func (r *NpmRegistryRepository) FetchRelease(
	ctx context.Context,
	name string,
) (entities.PackageRelease, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.packageURL(name), nil)
	if err != nil {
		return entities.PackageRelease{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debugf("[%s] GET %s", registryName, req.URL)

	resp, err := r.client.Do(req)
	if err != nil {
		return entities.PackageRelease{}, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entities.PackageRelease{}, fmt.Errorf(
			"failed to fetch %s: unexpected status code: %d", name, resp.StatusCode,
		)
	}

	var doc packument
	if decodeErr := json.NewDecoder(resp.Body).Decode(&doc); decodeErr != nil {
		return entities.PackageRelease{}, fmt.Errorf("failed to parse %s: %w", name, decodeErr)
	}

	return parsePackument(name, doc)
}

// packageURL builds the document URL. Scoped names keep their "@" but have
// the slash escaped, as the registry expects "@scope%2Fname".
func (r *NpmRegistryRepository) packageURL(name string) string {
	return r.baseURL + "/" + url.PathEscape(name)
}

func parsePackument(name string, doc packument) (entities.PackageRelease, error) {
	latest := doc.DistTags[latestTag]
	if latest == "" {
		return entities.PackageRelease{}, fmt.Errorf("%s: %w", name, errMissingLatestTag)
	}

	raw, ok := doc.Time[latest].(string)
	if !ok || raw == "" {
		return entities.PackageRelease{}, fmt.Errorf("%s: %w", name, errMissingTimestamp)
	}

	publishedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return entities.PackageRelease{}, fmt.Errorf("%s: invalid publish time %q: %w", name, raw, err)
	}

	return entities.PackageRelease{
		Name:          name,
		LatestVersion: latest,
		PublishedAt:   publishedAt,
	}, nil
}
