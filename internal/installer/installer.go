// Package installer orchestrates the install/cache pipeline:
// check-installed, check-cache, locate, fetch, extract, finalize.
package installer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/gdvm/internal/archive"
	"github.com/thoreinstein/gdvm/internal/github"
	"github.com/thoreinstein/gdvm/internal/logging"
	"github.com/thoreinstein/gdvm/internal/platform"
	"github.com/thoreinstein/gdvm/internal/store"
	"github.com/thoreinstein/gdvm/internal/version"
	"github.com/thoreinstein/gdvm/pkg/fileutil"
)

// ReleaseLocator resolves a canonical tag plus asset name to an artifact.
type ReleaseLocator interface {
	Locate(ctx context.Context, tag, assetName string) (*github.Artifact, error)
}

// Downloader fetches the full body at a URL.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Options represents installation options.
type Options struct {
	// Force reinstalls even when the version is already installed. It is
	// equivalent to uninstall-then-install: the old install directory is
	// removed first so old and new files never overlay.
	Force bool
}

// Result reports what the pipeline did.
type Result struct {
	// InstalledPath is the install directory of the version.
	InstalledPath string

	// AlreadyInstalled is set when the pipeline short-circuited because the
	// binary was already present. Not an error.
	AlreadyInstalled bool

	// FromCache is set when the archive came from the cache instead of the
	// network.
	FromCache bool
}

// Pipeline installs and uninstalls engine versions against a fixed store
// layout and platform.
type Pipeline struct {
	layout     store.Layout
	plat       platform.Platform
	locator    ReleaseLocator
	downloader Downloader
}

// New creates a Pipeline.
func New(layout store.Layout, plat platform.Platform, locator ReleaseLocator, downloader Downloader) *Pipeline {
	return &Pipeline{
		layout:     layout,
		plat:       plat,
		locator:    locator,
		downloader: downloader,
	}
}

// Install runs the pipeline for spec.
//
// Installing a version that is already installed is a no-op reporting
// AlreadyInstalled. A cached archive skips the network entirely: once an
// archive for a (version, platform) pair is cached it is never re-fetched
// unless the cache file is removed.
func (p *Pipeline) Install(ctx context.Context, spec version.Spec, opts Options) (*Result, error) {
	log := logging.FromContext(ctx).With("version", spec.Canonical)

	if opts.Force {
		// Uninstall any existing version before installing.
		if _, err := p.Uninstall(spec); err != nil {
			return nil, errors.Wrap(err, "removing previous install")
		}
	} else if p.layout.State(spec, p.plat) == store.Installed {
		log.Debug("already installed, skipping")
		return &Result{
			InstalledPath:    p.layout.InstalledRootDir(spec),
			AlreadyInstalled: true,
		}, nil
	}

	archivePath := p.layout.CachedArchivePath(spec, p.plat)
	if isRegularFile(archivePath) {
		log.Debug("cache hit, extracting without download", "archive", archivePath)
		data, err := os.ReadFile(archivePath)
		if err != nil {
			return nil, errors.Wrap(err, "reading cached archive")
		}
		installedPath, err := p.extractInstall(spec, data)
		if err != nil {
			return nil, err
		}
		return &Result{InstalledPath: installedPath, FromCache: true}, nil
	}

	// Nothing has been written yet; locate failures leave the store as-is.
	artifact, err := p.locator.Locate(ctx, spec.Canonical, p.layout.ArchiveName(spec, p.plat))
	if err != nil {
		return nil, err
	}

	log.Debug("downloading release archive", "url", artifact.DownloadURL)
	data, err := p.downloader.Download(ctx, artifact.DownloadURL)
	if err != nil {
		return nil, errors.Wrap(err, "fetching release archive")
	}

	// Persist to the cache before extracting. The atomic write closes and
	// renames the file, so a cache entry is either complete or absent.
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}
	if err := fileutil.AtomicWriteFile(archivePath, data, 0o644); err != nil {
		return nil, errors.Wrap(err, "caching archive")
	}
	log.Debug("cached archive", "archive", archivePath, "bytes", len(data))

	installedPath, err := p.extractInstall(spec, data)
	if err != nil {
		return nil, err
	}
	return &Result{InstalledPath: installedPath}, nil
}

// extractInstall unpacks the archive bytes into a temporary sibling
// directory, writes the self-contained-mode marker, and renames the result
// into place. A crash mid-extract leaves only a temp directory behind,
// never a directory that looks installed.
func (p *Pipeline) extractInstall(spec version.Spec, data []byte) (string, error) {
	enginesDir := p.layout.EnginesDataDir()
	if err := os.MkdirAll(enginesDir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating engines directory")
	}

	tmpDir, err := os.MkdirTemp(enginesDir, "."+spec.Canonical+"-*")
	if err != nil {
		return "", errors.Wrap(err, "creating staging directory")
	}
	defer func() {
		// Gone after a successful rename; only failures leave it to remove.
		if _, statErr := os.Stat(tmpDir); statErr == nil {
			os.RemoveAll(tmpDir)
		}
	}()

	if err := os.Chmod(tmpDir, 0o755); err != nil {
		return "", errors.Wrap(err, "setting staging directory permissions")
	}

	if err := archive.Extract(data, tmpDir); err != nil {
		return "", errors.Wrap(err, "extracting archive")
	}

	// The empty _sc_ marker makes Godot run in self-contained mode, keeping
	// its editor data inside the install directory.
	markerPath := filepath.Join(tmpDir, store.MarkerName)
	if err := os.WriteFile(markerPath, nil, 0o644); err != nil {
		return "", errors.Wrap(err, "writing self-contained marker")
	}

	rootDir := p.layout.InstalledRootDir(spec)

	// A stale install directory (binary gone, other files left) would make
	// the rename fail. The state check already ruled out a live install, so
	// whatever is there is debris from a broken one.
	if err := os.RemoveAll(rootDir); err != nil {
		return "", errors.Wrap(err, "removing stale install directory")
	}
	if err := os.Rename(tmpDir, rootDir); err != nil {
		return "", errors.Wrap(err, "finalizing install directory")
	}

	return rootDir, nil
}

// Uninstall removes the install directory for spec if present and reports
// whether anything was removed. The cached archive is never touched, so a
// reinstall after uninstall is a cache hit.
func (p *Pipeline) Uninstall(spec version.Spec) (bool, error) {
	rootDir := p.layout.InstalledRootDir(spec)

	info, err := os.Stat(rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "stating install directory")
	}
	if !info.IsDir() {
		return false, nil
	}

	if err := os.RemoveAll(rootDir); err != nil {
		return false, errors.Wrap(err, "removing install directory")
	}
	return true, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
