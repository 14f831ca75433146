package collector

import (
	"runtime"
	"strings"

	. "github.com/DGHeroin/SysInfo/SysInfo"
	"github.com/shirou/gopsutil/v3/host"
)

// Platform never fails: if the kernel cannot be asked, the compiled-in
// architecture is reported instead.
func (c *Collector) Platform() (*PlatformInfo, error) {
	arch, err := host.KernelArch()
	if err != nil || arch == "" {
		arch = runtime.GOARCH
	}
	return &PlatformInfo{
		Platform: arch,
		System:   systemName(runtime.GOOS),
	}, nil
}

// systemName turns a GOOS style name into the uname spelling: "linux" -> "Linux".
func systemName(goos string) string {
	switch goos {
	case "":
		return ""
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "aix":
		return "AIX"
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
