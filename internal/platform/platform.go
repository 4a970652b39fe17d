// Package platform maps the host OS/architecture onto the artifact naming
// scheme used by Godot's release packaging.
package platform

import "runtime"

// Platform enumerates the OS/architecture combinations Godot publishes
// engine binaries for. Unsupported is the zero value so an unresolved
// Platform never matches a real artifact.
type Platform int

const (
	Unsupported Platform = iota
	Win32
	Win64
	MacOS
	Linux32
	Linux64
)

// Resolve maps the host OS and architecture to a Platform. There is no
// error path: combinations Godot does not package for resolve to
// Unsupported, and the caller reports that as a user-facing message once
// artifact lookup fails.
func Resolve() Platform {
	return resolve(runtime.GOOS, runtime.GOARCH)
}

func resolve(goos, goarch string) Platform {
	switch goos {
	case "windows":
		switch goarch {
		case "386":
			return Win32
		case "amd64":
			return Win64
		}
	case "darwin":
		// The macOS package is a universal binary.
		return MacOS
	case "linux":
		switch goarch {
		case "386":
			return Linux32
		case "amd64":
			return Linux64
		}
	}
	return Unsupported
}

// Suffix returns the artifact name suffix for the platform. The mapping is
// total: every variant, including Unsupported, yields a suffix so path
// construction never fails on this input alone.
func (p Platform) Suffix() string {
	switch p {
	case Win32:
		return "win32.exe"
	case Win64:
		return "win64.exe"
	case MacOS:
		return "osx.universal"
	case Linux32:
		return "x11.32"
	case Linux64:
		return "x11.64"
	default:
		return "unsupported"
	}
}

// Supported reports whether Godot publishes artifacts for this platform.
func (p Platform) Supported() bool {
	return p != Unsupported
}

// String returns the artifact suffix, which doubles as a readable name.
func (p Platform) String() string {
	return p.Suffix()
}
