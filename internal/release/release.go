// Package release models the two remote release registries and resolves
// user-supplied version tokens to concrete release tags.
package release

import (
	"context"
	"fmt"
	"io"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/hostcli"
)

// Release is one published version in a registry.
type Release struct {
	ID         int64   `json:"id"`
	TagName    string  `json:"tag_name"`
	Draft      bool    `json:"draft"`
	Prerelease bool    `json:"prerelease"`
	Assets     []Asset `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Asset returns the named asset, if the release carries one.
func (r *Release) Asset(name string) (*Asset, bool) {
	for i := range r.Assets {
		if r.Assets[i].Name == name {
			return &r.Assets[i], true
		}
	}
	return nil, false
}

// Source reads a channel's release registry. The production Source
// proxies through the host CLI; tests substitute fakes.
type Source interface {
	// ListReleases returns every release in registry listing order.
	ListReleases(ctx context.Context) ([]Release, error)
	// ReleaseByTag fetches a single release by exact tag. A release
	// that does not exist is an error.
	ReleaseByTag(ctx context.Context, tag string) (*Release, error)
	// DownloadAsset streams an asset's content to w.
	DownloadAsset(ctx context.Context, assetID int64, w io.Writer) error
}

// listPageSize is the registry page size used when listing releases.
const listPageSize = 100

// APISource reads a registry through the host CLI's authenticated API
// proxy.
type APISource struct {
	cli     *hostcli.Client
	channel Channel
}

// NewSource creates a Source for one channel's repository.
func NewSource(cli *hostcli.Client, channel Channel) *APISource {
	return &APISource{cli: cli, channel: channel}
}

// ListReleases pages through the registry until a short page.
func (s *APISource) ListReleases(ctx context.Context) ([]Release, error) {
	var releases []Release
	for page := 1; ; page++ {
		path := fmt.Sprintf("repos/%s/releases?per_page=%d&page=%d", s.channel.Repo(), listPageSize, page)
		var batch []Release
		if err := s.cli.GetJSON(ctx, path, &batch); err != nil {
			return nil, fmt.Errorf("list releases for %s: %w", s.channel.Repo(), err)
		}
		releases = append(releases, batch...)
		if len(batch) < listPageSize {
			return releases, nil
		}
	}
}

// ReleaseByTag fetches one release. Any lookup failure is reported as
// the release not existing; the caller's prefix retry and final
// "unknown version" error handle the rest.
func (s *APISource) ReleaseByTag(ctx context.Context, tag string) (*Release, error) {
	path := fmt.Sprintf("repos/%s/releases/tags/%s", s.channel.Repo(), tag)
	var rel Release
	if err := s.cli.GetJSON(ctx, path, &rel); err != nil {
		return nil, fmt.Errorf("release %s not found in %s: %w", tag, s.channel.Repo(), err)
	}
	return &rel, nil
}

// DownloadAsset streams an asset by id through the API proxy.
func (s *APISource) DownloadAsset(ctx context.Context, assetID int64, w io.Writer) error {
	path := fmt.Sprintf("repos/%s/releases/assets/%d", s.channel.Repo(), assetID)
	if err := s.cli.Download(ctx, path, w); err != nil {
		return fmt.Errorf("download asset %d from %s: %w", assetID, s.channel.Repo(), err)
	}
	return nil
}
