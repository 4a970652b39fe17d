// Package store computes the on-disk layout of gdvm's two-tier engine
// store and derives installation state from it.
//
// The store has no manifest. Paths are pure functions of the canonical
// version and the platform, which is what makes the already-installed and
// cache-hit checks correct across runs: the same (version, platform) pair
// always lands on the same paths.
package store

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/gdvm/internal/platform"
	"github.com/thoreinstein/gdvm/internal/version"
)

const (
	// enginesSubdir is the subtree both stores keep engine entries under.
	enginesSubdir = "engines"

	// ArchiveExt is the extension of Godot's release archives.
	ArchiveExt = ".zip"

	// MarkerName is the empty sentinel file written into an install
	// directory. Godot switches to self-contained mode when it is present,
	// keeping editor data next to the binary instead of in the home
	// directory.
	MarkerName = "_sc_"
)

// Layout computes paths inside the data and cache roots. It performs no
// I/O of its own beyond the state helpers in state.go.
type Layout struct {
	// DataDir is the root holding extracted installations.
	DataDir string

	// CacheDir is the root holding downloaded archives.
	CacheDir string
}

// NewLayout returns a Layout over the given roots.
func NewLayout(dataDir, cacheDir string) Layout {
	return Layout{DataDir: dataDir, CacheDir: cacheDir}
}

// BinaryName returns the platform-specific engine binary name,
// e.g. "Godot_v3.5.1-stable_x11.64". Release archives carry the same name
// plus ArchiveExt.
func (l Layout) BinaryName(spec version.Spec, plat platform.Platform) string {
	return "Godot_v" + spec.Canonical + "_" + plat.Suffix()
}

// ArchiveName returns the release asset name for the version/platform pair.
func (l Layout) ArchiveName(spec version.Spec, plat platform.Platform) string {
	return l.BinaryName(spec, plat) + ArchiveExt
}

// EnginesDataDir returns <data>/engines/.
func (l Layout) EnginesDataDir() string {
	return filepath.Join(l.DataDir, enginesSubdir)
}

// EnginesCacheDir returns <cache>/engines/.
func (l Layout) EnginesCacheDir() string {
	return filepath.Join(l.CacheDir, enginesSubdir)
}

// InstalledRootDir returns <data>/engines/<canonical>/.
func (l Layout) InstalledRootDir(spec version.Spec) string {
	return filepath.Join(l.EnginesDataDir(), spec.Canonical)
}

// InstalledBinaryPath returns <data>/engines/<canonical>/<binaryName>.
func (l Layout) InstalledBinaryPath(spec version.Spec, plat platform.Platform) string {
	return filepath.Join(l.InstalledRootDir(spec), l.BinaryName(spec, plat))
}

// MarkerPath returns the path of the self-contained-mode marker inside the
// install directory.
func (l Layout) MarkerPath(spec version.Spec) string {
	return filepath.Join(l.InstalledRootDir(spec), MarkerName)
}

// CachedArchiveDir returns <cache>/engines/<canonical>/.
func (l Layout) CachedArchiveDir(spec version.Spec) string {
	return filepath.Join(l.EnginesCacheDir(), spec.Canonical)
}

// CachedArchivePath returns <cache>/engines/<canonical>/<binaryName>.zip.
func (l Layout) CachedArchivePath(spec version.Spec, plat platform.Platform) string {
	return filepath.Join(l.CachedArchiveDir(spec), l.ArchiveName(spec, plat))
}

// InstalledVersions returns the canonical version names that have a
// runnable binary for the given platform under the data root, in directory
// order. A missing engines directory yields an empty list, not an error.
func (l Layout) InstalledVersions(plat platform.Platform) ([]string, error) {
	entries, err := os.ReadDir(l.EnginesDataDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading engines directory")
	}

	var versions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		canonical := entry.Name()
		binPath := filepath.Join(l.EnginesDataDir(), canonical, "Godot_v"+canonical+"_"+plat.Suffix())
		if isRegularFile(binPath) {
			versions = append(versions, canonical)
		}
	}
	return versions, nil
}

// CacheEntry describes one archive in the cache subtree.
type CacheEntry struct {
	Canonical string
	Path      string
	Size      int64
}

// CachedArchives returns the archives present under the cache root.
// A missing engines directory yields an empty list, not an error.
func (l Layout) CachedArchives() ([]CacheEntry, error) {
	dirs, err := os.ReadDir(l.EnginesCacheDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading cache directory")
	}

	var out []CacheEntry
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		versionDir := filepath.Join(l.EnginesCacheDir(), dir.Name())
		files, err := os.ReadDir(versionDir)
		if err != nil {
			return nil, errors.Wrapf(err, "reading cache entry %s", dir.Name())
		}
		for _, f := range files {
			if f.IsDir() || filepath.Ext(f.Name()) != ArchiveExt {
				continue
			}
			info, err := f.Info()
			if err != nil {
				return nil, errors.Wrapf(err, "stating cache entry %s", f.Name())
			}
			out = append(out, CacheEntry{
				Canonical: dir.Name(),
				Path:      filepath.Join(versionDir, f.Name()),
				Size:      info.Size(),
			})
		}
	}
	return out, nil
}
