package release

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Latest is the sentinel version token that resolves to the newest
// release on the active channel.
const Latest = "latest"

// ErrUnknownVersion reports a token that matches no release tag, with
// or without the conventional prefix.
var ErrUnknownVersion = errors.New("unknown version")

// Resolver turns version tokens into concrete release tags. Resolution
// is a pure read against the Source; it never mutates anything, but may
// issue several remote queries for a single token.
type Resolver struct {
	src     Source
	channel Channel
}

// NewResolver creates a Resolver for one channel.
func NewResolver(src Source, channel Channel) *Resolver {
	return &Resolver{src: src, channel: channel}
}

// Resolve maps a token to a concrete tag.
//
// The empty token is an error: callers either pass "latest" explicitly
// or supply a previously pinned tag. "latest" delegates to the
// channel's selection rule. Anything else must match a release tag
// exactly, or with the conventional prefix prepended; the prefix retry
// runs on both channels even though only stable tags are prefixed.
func (r *Resolver) Resolve(ctx context.Context, token string) (string, error) {
	switch token {
	case "":
		return "", errors.New("no version specified")
	case Latest:
		releases, err := r.src.ListReleases(ctx)
		if err != nil {
			return "", err
		}
		latest, err := r.channel.Latest(releases)
		if err != nil {
			return "", err
		}
		slog.Debug("resolved latest release", "channel", r.channel.Name(), "tag", latest.TagName)
		return latest.TagName, nil
	}

	if rel, err := r.src.ReleaseByTag(ctx, token); err == nil {
		return rel.TagName, nil
	}
	if rel, err := r.src.ReleaseByTag(ctx, tagPrefix+token); err == nil {
		slog.Debug("resolved tag with prefix", "token", token, "tag", rel.TagName)
		return rel.TagName, nil
	}
	return "", fmt.Errorf("%w %q on channel %s", ErrUnknownVersion, token, r.channel.Name())
}
