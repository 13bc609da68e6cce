package cache

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/platform"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/release"
)

// fakeSource serves one release whose platform asset is an in-memory
// archive, and counts downloads.
type fakeSource struct {
	release   release.Release
	archive   []byte
	downloads int
}

func (s *fakeSource) ListReleases(_ context.Context) ([]release.Release, error) {
	return []release.Release{s.release}, nil
}

func (s *fakeSource) ReleaseByTag(_ context.Context, tag string) (*release.Release, error) {
	if tag != s.release.TagName {
		return nil, fmt.Errorf("release %s not found", tag)
	}
	return &s.release, nil
}

func (s *fakeSource) DownloadAsset(_ context.Context, assetID int64, w io.Writer) error {
	if assetID != s.release.Assets[0].ID {
		return fmt.Errorf("unknown asset %d", assetID)
	}
	s.downloads++
	_, err := w.Write(s.archive)
	return err
}

// buildArchive builds a zip whose layout matches a release bundle:
// everything under a top-level codeql/ directory.
func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
		hdr.SetMode(0o755)
		f, err := w.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("create archive entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("write archive entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func newTestSource(t *testing.T, tag string) *fakeSource {
	t.Helper()

	archive := buildArchive(t, map[string]string{
		"codeql/codeql":        "#!/bin/sh\necho fake tool\n",
		"codeql/lib/query.txt": "contents",
	})
	return &fakeSource{
		release: release.Release{
			ID:      1,
			TagName: tag,
			Assets:  []release.Asset{{ID: 10, Name: "codeql-linux64.zip", Size: int64(len(archive))}},
		},
		archive: archive,
	}
}

func TestEnsureCreatesEntry(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root, platform.Linux)
	src := newTestSource(t, "v2.17.0")

	entry, err := m.Ensure(context.Background(), src, release.Stable, "v2.17.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(root, "dist", "stable", "v2.17.0")
	if entry != want {
		t.Errorf("got entry %s, want %s", entry, want)
	}
	if !m.IsInstalled(release.Stable, "v2.17.0") {
		t.Error("expected version to be installed")
	}

	info, err := os.Stat(m.ExecutablePath(release.Stable, "v2.17.0"))
	if err != nil {
		t.Fatalf("stat executable: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Error("expected executable bit to survive extraction")
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	m := NewManager(t.TempDir(), platform.Linux)
	src := newTestSource(t, "v2.17.0")
	ctx := context.Background()

	if _, err := m.Ensure(ctx, src, release.Stable, "v2.17.0"); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if _, err := m.Ensure(ctx, src, release.Stable, "v2.17.0"); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if src.downloads != 1 {
		t.Errorf("got %d downloads, want 1 (second ensure must short-circuit)", src.downloads)
	}
}

func TestEnsureFailedExtractionLeavesNothing(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root, platform.Linux)
	src := newTestSource(t, "v2.17.0")
	src.archive = []byte("this is not a zip archive")

	_, err := m.Ensure(context.Background(), src, release.Stable, "v2.17.0")
	if err == nil {
		t.Fatal("expected extraction to fail")
	}
	if m.IsInstalled(release.Stable, "v2.17.0") {
		t.Error("failed download must not look cached")
	}

	// The staging directory is removed on every exit path.
	entries, err := os.ReadDir(filepath.Join(root, "dist"))
	if err != nil {
		t.Fatalf("read cache root: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "staging-") {
			t.Errorf("staging directory %s left behind", e.Name())
		}
	}
}

func TestEnsureMissingAsset(t *testing.T) {
	m := NewManager(t.TempDir(), platform.Windows)
	src := newTestSource(t, "v2.17.0") // only carries the linux asset

	_, err := m.Ensure(context.Background(), src, release.Stable, "v2.17.0")
	if err == nil || !strings.Contains(err.Error(), "codeql-win64.zip") {
		t.Fatalf("got %v, want missing-asset error", err)
	}
}

func TestEnsureVanishedTag(t *testing.T) {
	m := NewManager(t.TempDir(), platform.Linux)
	src := newTestSource(t, "v2.17.0")

	_, err := m.Ensure(context.Background(), src, release.Stable, "v2.16.0")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("got %v, want version-not-found error", err)
	}
}

func TestListInstalled(t *testing.T) {
	m := NewManager(t.TempDir(), platform.Linux)
	src := newTestSource(t, "v2.17.0")
	ctx := context.Background()

	names, err := m.List(release.Stable)
	if err != nil {
		t.Fatalf("list on empty cache: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected empty list, got %v", names)
	}

	if _, err := m.Ensure(ctx, src, release.Stable, "v2.17.0"); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	names, err = m.List(release.Stable)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != "v2.17.0" {
		t.Errorf("got %v, want [v2.17.0]", names)
	}

	// Entries are channel-keyed and never shared across channels.
	names, err = m.List(release.Nightly)
	if err != nil {
		t.Fatalf("list nightly: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("nightly channel unexpectedly lists %v", names)
	}
}

func TestCleanup(t *testing.T) {
	m := NewManager(t.TempDir(), platform.Linux)
	src := newTestSource(t, "v2.17.0")
	ctx := context.Background()

	if _, err := m.Ensure(ctx, src, release.Stable, "v2.17.0"); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	// Removing a version that is not installed fails and leaves the
	// cache unchanged.
	err := m.Cleanup(release.Stable, "v9.9.9")
	if !errors.Is(err, ErrNotInstalled) {
		t.Fatalf("got %v, want ErrNotInstalled", err)
	}
	if !m.IsInstalled(release.Stable, "v2.17.0") {
		t.Fatal("failed cleanup must not touch other entries")
	}

	if err := m.Cleanup(release.Stable, "v2.17.0"); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if m.IsInstalled(release.Stable, "v2.17.0") {
		t.Error("expected version to be removed")
	}
}

func TestCleanupAll(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root, platform.Linux)
	src := newTestSource(t, "v2.17.0")

	if _, err := m.Ensure(context.Background(), src, release.Stable, "v2.17.0"); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := m.CleanupAll(); err != nil {
		t.Fatalf("cleanup-all: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "dist")); !os.IsNotExist(err) {
		t.Error("expected cache root to be gone")
	}
}
