package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZebulonRouseFrantzich/gh-codeql/internal/testutil"
)

// configScript emulates the host CLI's config get/set against files in
// GH_CONFIG_DIR, one file per key. API calls fail, so any test that
// reaches the network path fails loudly instead of silently passing.
const configScript = `dir="${GH_CONFIG_DIR:?}"
case "$1" in
config)
  case "$2" in
  get) [ -f "$dir/$3" ] || exit 1; cat "$dir/$3" ;;
  set) printf '%s\n' "$4" > "$dir/$3" ;;
  *) exit 64 ;;
  esac ;;
*) echo "unexpected host CLI call: $*" >&2; exit 64 ;;
esac
`

// setupCmdTest isolates the install root and host CLI config and
// installs the scripted host CLI fake.
func setupCmdTest(t *testing.T) {
	t.Helper()
	testutil.SetupTestEnv(t)
	testutil.FakeHostCLI(t, configScript)
}

func writeConfigKey(t *testing.T, key, value string) {
	t.Helper()
	path := filepath.Join(os.Getenv("GH_CONFIG_DIR"), key)
	if err := os.WriteFile(path, []byte(value+"\n"), 0o644); err != nil {
		t.Fatalf("write config key %s: %v", key, err)
	}
}

func readConfigKey(t *testing.T, key string) (string, bool) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(os.Getenv("GH_CONFIG_DIR"), key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false
		}
		t.Fatalf("read config key %s: %v", key, err)
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
