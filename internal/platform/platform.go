// Package platform maps the host operating system to a tool platform.
package platform

import (
	"fmt"
	"runtime"
)

// Platform identifies which release asset matches the host.
type Platform string

const (
	// Linux is the 64-bit Linux tool build.
	Linux Platform = "linux64"
	// MacOS is the 64-bit macOS tool build.
	MacOS Platform = "osx64"
	// Windows is the 64-bit Windows tool build.
	Windows Platform = "win64"
)

// String returns the platform token used in asset names.
func (p Platform) String() string {
	return string(p)
}

// AssetName returns the release asset name for this platform.
func (p Platform) AssetName() string {
	return fmt.Sprintf("codeql-%s.zip", p)
}

// ExecutableName returns the tool executable file name for this platform.
func (p Platform) ExecutableName() string {
	if p == Windows {
		return "codeql.exe"
	}
	return "codeql"
}

// Parse validates a platform token, typically a configured override.
func Parse(s string) (Platform, error) {
	switch Platform(s) {
	case Linux, MacOS, Windows:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unsupported platform %q (expected linux64, osx64, or win64)", s)
}

// Detect resolves the effective platform. A non-empty override wins;
// otherwise the platform is derived from the host OS. The override and
// the detected value are both immutable for the rest of the invocation.
func Detect(override string) (Platform, error) {
	if override != "" {
		return Parse(override)
	}
	return fromOS(runtime.GOOS)
}

func fromOS(goos string) (Platform, error) {
	switch goos {
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	case "windows":
		return Windows, nil
	}
	return "", fmt.Errorf("unable to detect platform for OS %q: set the codeql-platform config key to linux64, osx64, or win64", goos)
}
