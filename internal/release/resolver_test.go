package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
)

// fakeSource serves a fixed release list and counts queries.
type fakeSource struct {
	releases  []Release
	listCalls int
	tagCalls  int
}

func (s *fakeSource) ListReleases(_ context.Context) ([]Release, error) {
	s.listCalls++
	return s.releases, nil
}

func (s *fakeSource) ReleaseByTag(_ context.Context, tag string) (*Release, error) {
	s.tagCalls++
	for i := range s.releases {
		if s.releases[i].TagName == tag {
			return &s.releases[i], nil
		}
	}
	return nil, fmt.Errorf("release %s not found", tag)
}

func (s *fakeSource) DownloadAsset(_ context.Context, _ int64, _ io.Writer) error {
	return errors.New("not supported")
}

func TestResolve(t *testing.T) {
	releases := []Release{
		{TagName: "v2.17.0"},
		{TagName: "v2.16.4"},
	}

	tests := []struct {
		name     string
		token    string
		want     string
		wantErr  bool
		tagCalls int
	}{
		{name: "empty_token_fails", token: "", wantErr: true},
		{name: "latest", token: "latest", want: "v2.17.0"},
		{name: "exact_tag", token: "v2.16.4", want: "v2.16.4", tagCalls: 1},
		{name: "prefix_retry", token: "2.16.4", want: "v2.16.4", tagCalls: 2},
		{name: "unknown_version", token: "9.9.9", wantErr: true, tagCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{releases: releases}
			r := NewResolver(src, Stable)

			got, err := r.Resolve(context.Background(), tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for token %q", tt.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			if src.tagCalls != tt.tagCalls {
				t.Errorf("got %d tag lookups, want %d", src.tagCalls, tt.tagCalls)
			}
		})
	}
}

func TestResolveUnknownVersionError(t *testing.T) {
	src := &fakeSource{}
	r := NewResolver(src, Stable)

	_, err := r.Resolve(context.Background(), "1.0.0")
	if !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("got %v, want ErrUnknownVersion", err)
	}
}

func TestResolveLatestListsOnce(t *testing.T) {
	src := &fakeSource{releases: []Release{{TagName: "v1.0.0"}}}
	r := NewResolver(src, Stable)

	if _, err := r.Resolve(context.Background(), Latest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.listCalls != 1 {
		t.Errorf("got %d list calls, want 1", src.listCalls)
	}
	if src.tagCalls != 0 {
		t.Errorf("got %d tag lookups, want 0", src.tagCalls)
	}
}

// The prefix retry is applied on nightly as well even though nightly
// tags are unprefixed; the second lookup is a harmless miss.
func TestResolvePrefixRetryOnNightly(t *testing.T) {
	src := &fakeSource{releases: []Release{{TagName: "nightly-2024-06-01"}}}
	r := NewResolver(src, Nightly)

	_, err := r.Resolve(context.Background(), "missing-tag")
	if !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("got %v, want ErrUnknownVersion", err)
	}
	if src.tagCalls != 2 {
		t.Errorf("got %d tag lookups, want 2", src.tagCalls)
	}
}
