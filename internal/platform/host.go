package platform

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo describes the machine the wrapper is running on. It is only
// used for trace output and error messages; platform selection itself
// depends on nothing beyond the OS.
type HostInfo struct {
	OS      string
	Arch    string
	Distro  string
	Version string
}

// HostDetails collects host information for diagnostics. Distribution
// details come from gopsutil and are best-effort: when detection fails
// the OS and architecture alone are reported.
func HostDetails(ctx context.Context) HostInfo {
	info := HostInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	plat, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return info
	}
	info.Distro = plat
	info.Version = version
	return info
}
