package pom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultMavenRepoURL = "https://repo1.maven.org/maven2"
	EnvMavenRepoURL     = "MAVEN_REPO_URL"

	defaultCacheSize = 256
)

// POMFetcher supplies descriptors that are not on the local disk, such as
// remote parents and imported BOMs. Each call returns a fresh model that
// the caller may modify.
type POMFetcher interface {
	FetchPOM(ctx context.Context, groupID, artifactID, version string) (*Project, error)
}

type MavenFetcher struct {
	RepoURL    string
	httpClient *http.Client
	cache      *lru.Cache[string, []byte]
}

func NewMavenFetcher() *MavenFetcher {
	repoURL := os.Getenv(EnvMavenRepoURL)
	if repoURL == "" {
		repoURL = DefaultMavenRepoURL
	}
	return NewMavenFetcherWithClient(repoURL, &http.Client{})
}

func NewMavenFetcherWithClient(repoURL string, client *http.Client) *MavenFetcher {
	cache, _ := lru.New[string, []byte](defaultCacheSize)
	return &MavenFetcher{
		RepoURL:    strings.TrimSuffix(repoURL, "/"),
		httpClient: client,
		cache:      cache,
	}
}

func (f *MavenFetcher) FetchPOM(ctx context.Context, groupID, artifactID, version string) (*Project, error) {
	data, err := f.fetchRaw(ctx, groupID, artifactID, version)
	if err != nil {
		return nil, err
	}

	project, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse POM %s:%s:%s: %w", groupID, artifactID, version, err)
	}
	return project, nil
}

func (f *MavenFetcher) fetchRaw(ctx context.Context, groupID, artifactID, version string) ([]byte, error) {
	key := groupID + ":" + artifactID + ":" + version
	if data, ok := f.cache.Get(key); ok {
		return data, nil
	}

	url := f.pomURL(groupID, artifactID, version)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch POM: %w", err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch POM: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch POM: HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read POM: %w", err)
	}

	f.cache.Add(key, data)
	return data, nil
}

func (f *MavenFetcher) pomURL(groupID, artifactID, version string) string {
	groupPath := strings.ReplaceAll(groupID, ".", "/")
	return fmt.Sprintf("%s/%s/%s/%s/%s-%s.pom", f.RepoURL, groupPath, artifactID, version, artifactID, version)
}

func ParseCoordinate(coord string) (groupID, artifactID, version, classifier string, err error) {
	parts := strings.Split(coord, ":")
	switch len(parts) {
	case 3:
		return parts[0], parts[1], parts[2], "", nil
	case 4:
		return parts[0], parts[1], parts[3], parts[2], nil
	default:
		return "", "", "", "", fmt.Errorf("invalid Maven coordinate: %s (expected groupId:artifactId:version or groupId:artifactId:classifier:version)", coord)
	}
}
