// Package version normalizes user-supplied engine version tokens.
//
// A requested token like "3.5.1" becomes the canonical release tag
// "3.5.1-stable" by appending the release channel. The canonical form is
// derived purely from the input; it is what the release index is queried
// with and what every on-disk path is keyed by.
package version

import (
	"strings"

	"github.com/cockroachdb/errors"

	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
)

// DefaultChannel is the release channel appended to requested versions.
const DefaultChannel = "stable"

// Spec is an immutable pair of the user-supplied version token and the
// canonical release tag derived from it.
type Spec struct {
	// Requested is the token exactly as the user supplied it, e.g. "3.5.1".
	Requested string

	// Canonical is the release tag, e.g. "3.5.1-stable".
	Canonical string
}

// Parse builds a Spec from a user-supplied token and a release channel.
// An empty channel means DefaultChannel.
//
// The token ends up embedded in filesystem paths, so tokens that could
// escape the store (path separators, traversal segments) are rejected.
func Parse(requested, channel string) (Spec, error) {
	if err := validate(requested); err != nil {
		return Spec{}, err
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return Spec{
		Requested: requested,
		Canonical: requested + "-" + channel,
	}, nil
}

// FromTag builds a Spec from a canonical release tag, e.g. one picked from
// the release index listing. For a tag on the given channel the requested
// form is the tag with the channel suffix stripped. A tag from another
// channel (say "4.2-rc1" while the channel is "stable") is kept whole as
// both forms: re-appending the channel would fabricate a tag the index
// never published.
func FromTag(tag, channel string) (Spec, error) {
	if channel == "" {
		channel = DefaultChannel
	}
	suffix := "-" + channel
	if !strings.HasSuffix(tag, suffix) {
		if err := validate(tag); err != nil {
			return Spec{}, err
		}
		return Spec{Requested: tag, Canonical: tag}, nil
	}
	return Parse(strings.TrimSuffix(tag, suffix), channel)
}

// String returns the requested form, which is what users type and see.
func (s Spec) String() string {
	return s.Requested
}

func validate(token string) error {
	switch {
	case token == "":
		return errors.Wrap(gdvmerrors.ErrInvalidVersion, "empty version")
	case strings.ContainsAny(token, `/\`):
		return errors.Wrapf(gdvmerrors.ErrInvalidVersion, "%q contains a path separator", token)
	case token == "." || token == ".." || strings.Contains(token, ".."):
		return errors.Wrapf(gdvmerrors.ErrInvalidVersion, "%q contains a traversal segment", token)
	case strings.ContainsAny(token, " \t\n\r"):
		return errors.Wrapf(gdvmerrors.ErrInvalidVersion, "%q contains whitespace", token)
	}
	return nil
}
