// Package github queries the GitHub releases API, which serves as gdvm's
// release index, and downloads release assets.
package github

import "context"

// Release represents a GitHub release.
type Release struct {
	TagName string  `json:"tag_name"` // Canonical version tag (e.g. "3.5.1-stable")
	Name    string  `json:"name"`     // Release title
	Assets  []Asset `json:"assets"`   // Release assets
}

// Asset represents a GitHub release asset.
type Asset struct {
	Name        string `json:"name"`                 // Asset file name
	Size        int64  `json:"size"`                 // Asset size in bytes
	DownloadURL string `json:"browser_download_url"` // URL to download the asset
}

// Artifact is the resolved reference to one downloadable release archive.
// It is used once per install attempt and never persisted.
type Artifact struct {
	TagName     string
	DownloadURL string
}

// Client defines the release index operations gdvm needs.
type Client interface {
	// GetReleaseByTag fetches the release carrying the given tag.
	// A missing tag yields errors.ErrVersionNotFound; transport failures
	// are reported as distinct errors.
	GetReleaseByTag(ctx context.Context, tag string) (*Release, error)

	// ListReleases fetches all releases, following pagination.
	ListReleases(ctx context.Context) ([]*Release, error)

	// Download fetches the full body at url.
	Download(ctx context.Context, url string) ([]byte, error)
}
