package store

import (
	"os"

	"github.com/thoreinstein/gdvm/internal/platform"
	"github.com/thoreinstein/gdvm/internal/version"
)

// State is the installation state of a version, derived from path existence
// each time it is asked for. There is no persisted record: a present binary
// means installed, a present archive without a binary means cached only.
type State int

const (
	NotInstalled State = iota
	Installed
	CachedOnly
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case Installed:
		return "installed"
	case CachedOnly:
		return "cached"
	default:
		return "not installed"
	}
}

// State derives the tri-state for a version/platform pair from the
// filesystem.
func (l Layout) State(spec version.Spec, plat platform.Platform) State {
	if isRegularFile(l.InstalledBinaryPath(spec, plat)) {
		return Installed
	}
	if isRegularFile(l.CachedArchivePath(spec, plat)) {
		return CachedOnly
	}
	return NotInstalled
}

// isRegularFile reports whether path exists and is a regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
