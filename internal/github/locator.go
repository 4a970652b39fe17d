package github

import (
	"context"

	"github.com/cockroachdb/errors"

	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
)

// Locator resolves a canonical version tag to a downloadable artifact.
//
// The two failure axes stay distinct: a missing tag is
// errors.ErrVersionNotFound (propagated from the client), while a tag whose
// release carries no asset with the expected name is
// errors.ErrPlatformUnsupported. Collapsing them would lose the difference
// between "no such version" and "your platform isn't packaged".
type Locator struct {
	client Client
}

// NewLocator creates a Locator over the given release index client.
func NewLocator(c Client) *Locator {
	return &Locator{client: c}
}

// Locate resolves tag to the artifact whose asset name equals assetName.
func (l *Locator) Locate(ctx context.Context, tag, assetName string) (*Artifact, error) {
	release, err := l.client.GetReleaseByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	for _, asset := range release.Assets {
		if asset.Name == assetName {
			return &Artifact{
				TagName:     release.TagName,
				DownloadURL: asset.DownloadURL,
			}, nil
		}
	}

	return nil, errors.Wrapf(gdvmerrors.ErrPlatformUnsupported,
		"release %s has no asset named %q", tag, assetName)
}
