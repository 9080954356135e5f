// Package platform classifies the runtime environment so the opener can pick
// the right launch commands. Detection is total: anything that is not WSL,
// Windows, or macOS is treated as plain POSIX.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Kind is the detected environment category.
type Kind int

const (
	// KindPosix is a plain POSIX system (Linux, BSD, anything unmatched).
	KindPosix Kind = iota
	// KindWSL is a Linux userland running inside Windows (WSL 1 or 2).
	KindWSL
	// KindWindows is native Windows.
	KindWindows
	// KindDarwin is macOS.
	KindDarwin
)

func (k Kind) String() string {
	switch k {
	case KindWSL:
		return "wsl"
	case KindWindows:
		return "windows"
	case KindDarwin:
		return "darwin"
	default:
		return "posix"
	}
}

// ParseKind maps a config key back to a Kind. Unknown names report false.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "posix", "linux":
		return KindPosix, true
	case "wsl":
		return KindWSL, true
	case "windows":
		return KindWindows, true
	case "darwin", "macos":
		return KindDarwin, true
	}
	return KindPosix, false
}

// Detector classifies the current environment. The zero value uses the real
// host (runtime.GOOS and /proc/version); tests inject their own markers.
type Detector struct {
	// GOOS overrides runtime.GOOS when non-empty.
	GOOS string
	// ProcVersionFile is the kernel version file checked for the WSL vendor
	// string. Defaults to /proc/version.
	ProcVersionFile string
}

// Detect returns the environment Kind. It is cheap and idempotent, so callers
// re-run it per open rather than caching the result.
func (d Detector) Detect() Kind {
	goos := d.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return KindDarwin
	case "windows":
		return KindWindows
	}
	if d.isWSL() {
		return KindWSL
	}
	return KindPosix
}

// isWSL reports whether the kernel version file names the Windows host
// vendor. WSL 1 reports "Microsoft", WSL 2 "microsoft-standard"; the match is
// case-insensitive to cover both.
func (d Detector) isWSL() bool {
	path := d.ProcVersionFile
	if path == "" {
		path = "/proc/version"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}
