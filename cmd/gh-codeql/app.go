package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/cache"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/config"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/hostcli"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/platform"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/release"
)

// app wires the host CLI client, config store, platform, and cache
// manager for one invocation.
type app struct {
	store config.Store
	cli   *hostcli.Client
	plat  platform.Platform
	cache *cache.Manager
	debug bool
}

func newApp(ctx context.Context) (*app, error) {
	cli := hostcli.New()
	store := config.NewHostStore(cli)
	debug := setupLogging(ctx, store)

	override, _ := store.Get(ctx, config.KeyPlatform)
	plat, err := platform.Detect(override)
	if err != nil {
		return nil, err
	}

	root, err := cache.DefaultRoot()
	if err != nil {
		return nil, err
	}

	slog.Debug("initialized", "platform", plat, "root", root)
	return &app{
		store: store,
		cli:   cli,
		plat:  plat,
		cache: cache.NewManager(root, plat),
		debug: debug,
	}, nil
}

// setupLogging switches the default logger to debug level when tracing
// is requested via environment or configuration, and reports whether it
// did.
func setupLogging(ctx context.Context, store config.Store) bool {
	if os.Getenv(EnvDebug) == "" && !config.Bool(ctx, store, config.KeyDebug) {
		return false
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	host := platform.HostDetails(ctx)
	slog.Debug("host details", "os", host.OS, "arch", host.Arch, "distro", host.Distro, "version", host.Version)
	return true
}

// channel returns the active channel from configuration, defaulting to
// stable when unset.
func (a *app) channel(ctx context.Context) (release.Channel, error) {
	name, _ := a.store.Get(ctx, config.KeyChannel)
	return release.ParseChannel(name)
}

func (a *app) source(ch release.Channel) *release.APISource {
	return release.NewSource(a.cli, ch)
}

// ensure makes a version token available locally and returns the cache
// entry path and the concrete tag. An already-cached token is used
// verbatim without any remote query; otherwise the token goes through
// the resolver first.
func (a *app) ensure(ctx context.Context, ch release.Channel, token string) (string, string, error) {
	if token != release.Latest && a.cache.IsInstalled(ch, token) {
		return a.cache.EntryDir(ch, token), token, nil
	}
	src := a.source(ch)
	tag, err := release.NewResolver(src, ch).Resolve(ctx, token)
	if err != nil {
		return "", "", err
	}
	entry, err := a.cache.Ensure(ctx, src, ch, tag)
	if err != nil {
		return "", "", err
	}
	return entry, tag, nil
}
