package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/config"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/delegate"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/pin"
	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/release"
)

// runExec is the default path for anything that is not a management
// command: make the active version available and hand the process over
// to it with every argument forwarded verbatim. On success this does
// not return.
func runExec(args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	ch, err := a.channel(ctx)
	if err != nil {
		return err
	}

	token, err := a.effectiveVersion(ctx)
	if err != nil {
		return err
	}
	// First run with nothing pinned anywhere: resolve latest once and
	// persist it so later invocations stay on a fixed version.
	persistPin := token == ""
	if persistPin {
		token = release.Latest
	}

	entry, tag, err := a.ensure(ctx, ch, token)
	if err != nil {
		return err
	}
	if persistPin {
		if err := a.store.Set(ctx, config.KeyVersion, tag); err != nil {
			return err
		}
	}

	env := append(os.Environ(), EnvDist+"="+entry)
	if a.debug {
		env = append(env, EnvDebug+"=1")
	}
	exe := a.cache.ExecutablePath(ch, tag)
	slog.Debug("delegating to tool", "exe", exe, "tag", tag, "channel", ch.Name())
	return delegate.Run(exe, args, env)
}

// effectiveVersion applies the version precedence for the execute
// path: the environment override, then an honored local pin, then the
// global pin. An empty result means nothing is pinned anywhere.
func (a *app) effectiveVersion(ctx context.Context) (string, error) {
	if v := os.Getenv(EnvVersion); v != "" {
		slog.Debug("version from environment", "version", v)
		return v, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	tag, exists, err := pin.Read(cwd)
	if err != nil {
		return "", err
	}
	if exists {
		if config.Bool(ctx, a.store, config.KeyLocalVersion) {
			slog.Debug("version from local pin", "version", tag, "dir", cwd)
			return tag, nil
		}
		warn("ignoring %s because local version support is disabled; enable it with 'gh codeql local-version on'", pin.FileName)
	}

	v, _ := a.store.Get(ctx, config.KeyVersion)
	return v, nil
}
