package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
)

const defaultBaseURL = "https://api.github.com"

// client implements the Client interface against the GitHub REST API.
type client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
	token      string
}

// NewClient creates a GitHub client for the given repository. The token is
// optional; unauthenticated requests work within GitHub's rate limits.
func NewClient(owner, repo, token string) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: defaultBaseURL,
		owner:   owner,
		repo:    repo,
		token:   token,
	}
}

// GetReleaseByTag fetches the release tagged with tag.
func (c *client) GetReleaseByTag(ctx context.Context, tag string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/tags/%s", c.baseURL, c.owner, c.repo, tag)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "querying release index")
	}
	defer resp.Body.Close()

	// A 404 means the tag does not exist; everything else non-OK is a
	// transport-level failure and must not be conflated with it.
	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Wrapf(gdvmerrors.ErrVersionNotFound, "no release tagged %q", tag)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("querying release index: unexpected status %s", resp.Status)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, errors.Wrap(err, "decoding release")
	}

	return &release, nil
}

// ListReleases fetches all releases, following the Link header for
// pagination.
func (c *client) ListReleases(ctx context.Context) ([]*Release, error) {
	var allReleases []*Release
	page := 1

	for {
		url := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=100&page=%d", c.baseURL, c.owner, c.repo, page)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errors.Wrap(err, "creating request")
		}
		c.setHeaders(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "listing releases")
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errors.Newf("listing releases: unexpected status %s", resp.Status)
		}

		var releases []*Release
		if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
			resp.Body.Close()
			return nil, errors.Wrap(err, "decoding releases")
		}

		linkHeader := resp.Header.Get("Link")
		resp.Body.Close()

		allReleases = append(allReleases, releases...)

		if !strings.Contains(linkHeader, `rel="next"`) {
			break
		}
		page++
	}

	return allReleases, nil
}

// Download fetches the full body at url into memory. Release archives are
// tens of megabytes, which is fine to hold while the cache write and the
// extraction both read from the same bytes.
func (c *client) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "downloading %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("downloading %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading body of %s", url)
	}

	return body, nil
}

func (c *client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}

