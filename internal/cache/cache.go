// Package cache maintains extracted tool versions on disk.
//
// Entries live at <root>/dist/<channel>/<tag>/ and are keyed by channel
// and tag; entries are never shared across channels. Existence of the
// expected executable is the sole cached check — no checksum or
// manifest is stored.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/platform"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/release"
)

// EnvHome overrides the install root. Without it the root is the
// directory containing the wrapper executable.
const EnvHome = "GH_CODEQL_HOME"

// ErrNotInstalled reports a cleanup of a version that has no cache entry.
var ErrNotInstalled = errors.New("version not installed")

// toolDirName is the top-level directory inside every release archive.
const toolDirName = "codeql"

// Manager creates, lists, and removes cache entries.
type Manager struct {
	root string
	plat platform.Platform
}

// NewManager creates a Manager rooted at root.
func NewManager(root string, plat platform.Platform) *Manager {
	return &Manager{root: root, plat: plat}
}

// DefaultRoot resolves the install root: the EnvHome override when set,
// otherwise the directory of the running executable.
func DefaultRoot() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate install root: %w", err)
	}
	return filepath.Dir(exe), nil
}

// Root returns the install root.
func (m *Manager) Root() string {
	return m.root
}

func (m *Manager) distDir() string {
	return filepath.Join(m.root, "dist")
}

func (m *Manager) channelDir(ch release.Channel) string {
	return filepath.Join(m.distDir(), ch.Name())
}

// EntryDir returns the deterministic cache path for a (channel, tag)
// pair. The directory contains the extracted tool; its existence is not
// the cached check, the executable's is.
func (m *Manager) EntryDir(ch release.Channel, tag string) string {
	return filepath.Join(m.channelDir(ch), tag)
}

// ExecutablePath returns where the tool executable lives inside a
// cache entry for the current platform.
func (m *Manager) ExecutablePath(ch release.Channel, tag string) string {
	return filepath.Join(m.EntryDir(ch, tag), m.plat.ExecutableName())
}

// IsInstalled reports whether a cache entry is complete. The final
// rename during Ensure happens only after extraction succeeds, so a
// present executable is never half-written.
func (m *Manager) IsInstalled(ch release.Channel, tag string) bool {
	info, err := os.Stat(m.ExecutablePath(ch, tag))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}

// Ensure makes a (channel, tag) entry present and returns its path.
// Idempotent: a complete entry short-circuits without touching the
// network.
//
// The download is staged in a uniquely named directory under the cache
// root and the extracted tool directory is renamed into place only
// after extraction succeeds, so a failure at any point leaves nothing
// that looks cached. The staging directory is removed on every exit
// path. Concurrent first downloads of the same tag are not mutually
// excluded; each invocation stages independently and whichever rename
// lands produces the (identical) entry.
func (m *Manager) Ensure(ctx context.Context, src release.Source, ch release.Channel, tag string) (string, error) {
	entry := m.EntryDir(ch, tag)
	if m.IsInstalled(ch, tag) {
		slog.Debug("version already cached", "channel", ch.Name(), "tag", tag, "path", entry)
		return entry, nil
	}

	// The tag was resolved earlier; guard against it having vanished
	// from the registry since.
	rel, err := src.ReleaseByTag(ctx, tag)
	if err != nil {
		return "", fmt.Errorf("version %s not found: %w", tag, err)
	}
	asset, ok := rel.Asset(m.plat.AssetName())
	if !ok {
		return "", fmt.Errorf("release %s has no %s asset", tag, m.plat.AssetName())
	}

	if err := os.MkdirAll(m.distDir(), 0o755); err != nil {
		return "", fmt.Errorf("create cache root: %w", err)
	}
	staging, err := os.MkdirTemp(m.distDir(), "staging-")
	if err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	archivePath := filepath.Join(staging, asset.Name)
	if err := m.download(ctx, src, asset, archivePath); err != nil {
		return "", err
	}

	slog.Debug("extracting archive", "archive", archivePath)
	if err := extractZip(archivePath, staging); err != nil {
		return "", fmt.Errorf("extract %s: %w", asset.Name, err)
	}
	extracted := filepath.Join(staging, toolDirName)
	if _, err := os.Stat(extracted); err != nil {
		return "", fmt.Errorf("archive %s did not contain a %s directory: %w", asset.Name, toolDirName, err)
	}

	if err := os.MkdirAll(filepath.Dir(entry), 0o755); err != nil {
		return "", fmt.Errorf("create channel dir: %w", err)
	}
	if err := os.Rename(extracted, entry); err != nil {
		// A concurrent invocation may have installed the same tag
		// between our check and the rename. Its entry is as good as
		// ours.
		if m.IsInstalled(ch, tag) {
			return entry, nil
		}
		return "", fmt.Errorf("install cache entry: %w", err)
	}
	return entry, nil
}

func (m *Manager) download(ctx context.Context, src release.Source, asset *release.Asset, dest string) error {
	slog.Debug("downloading asset", "asset", asset.Name, "size", asset.Size)
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}
	if err := src.DownloadAsset(ctx, asset.ID, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close archive file: %w", err)
	}
	return nil
}

// List returns the installed entry names for a channel, sorted. A
// channel that never downloaded anything lists as empty.
func (m *Manager) List(ch release.Channel) ([]string, error) {
	entries, err := os.ReadDir(m.channelDir(ch))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Cleanup removes one cache entry. Removing a version that is not
// installed is an error and leaves the cache unchanged.
func (m *Manager) Cleanup(ch release.Channel, tag string) error {
	entry := m.EntryDir(ch, tag)
	if _, err := os.Stat(entry); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s on channel %s", ErrNotInstalled, tag, ch.Name())
		}
		return fmt.Errorf("stat cache entry: %w", err)
	}
	if err := os.RemoveAll(entry); err != nil {
		return fmt.Errorf("remove cache entry: %w", err)
	}
	return nil
}

// CleanupAll removes the entire cache root, all channels included.
func (m *Manager) CleanupAll() error {
	if err := os.RemoveAll(m.distDir()); err != nil {
		return fmt.Errorf("remove cache root: %w", err)
	}
	return nil
}
