package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/config"
)

const usageText = `Usage: gh codeql <command> [args]
       gh codeql <tool args...>

Management commands:
  set-channel <stable|nightly>   switch release channel, clears the pinned version
  set-version [version]          resolve, download, and pin a version globally
  local-version <on|off>         toggle per-directory version pin support
  set-local-version [version]    resolve, download, and pin for this directory
  unset-local-version            remove this directory's version pin
  list-versions                  list remote versions on the current channel
  list-installed                 list downloaded versions on the current channel
  cleanup <version>              remove one downloaded version
  cleanup-all                    remove all downloaded versions
  download [version]             download a version without pinning it
  debug <on|off>                 toggle verbose trace output
  install-stub [dir]             install a 'codeql' forwarding stub (default /usr/local/bin)

Any other invocation is forwarded to the active CodeQL version.`

// runStatus handles the zero-argument invocation: usage plus the
// current configuration, exit 0.
func runStatus() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	fmt.Println(usageText)
	fmt.Println()

	ch, err := a.channel(ctx)
	if err != nil {
		return err
	}
	version, ok := a.store.Get(ctx, config.KeyVersion)
	if !ok {
		version = "(unpinned, latest on first run)"
	}
	localState := "off"
	if config.Bool(ctx, a.store, config.KeyLocalVersion) {
		localState = "on"
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Setting", "Value"})
	err = table.Bulk([][]string{
		{"Channel", ch.Name()},
		{"Version", version},
		{"Local version support", localState},
		{"Platform", a.plat.String()},
		{"Install root", a.cache.Root()},
	})
	if err != nil {
		return err
	}
	return table.Render()
}
