package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/gdvm/internal/config"
	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
	"github.com/thoreinstein/gdvm/internal/github"
	"github.com/thoreinstein/gdvm/internal/installer"
	"github.com/thoreinstein/gdvm/internal/platform"
	"github.com/thoreinstein/gdvm/internal/project"
	"github.com/thoreinstein/gdvm/internal/store"
	"github.com/thoreinstein/gdvm/internal/version"
)

// env bundles the wired-up dependencies a command needs. Commands build one
// per invocation from the loaded configuration.
type env struct {
	cfg      *config.Config
	layout   store.Layout
	plat     platform.Platform
	client   github.Client
	pipeline *installer.Pipeline
}

// newEnv wires the store layout, release client, and install pipeline from
// the current configuration. Unsupported host platforms are rejected here
// since every engine path is keyed by the platform suffix.
func newEnv() (*env, error) {
	cfg := currentConfig()

	plat := platform.Resolve()
	if !plat.Supported() {
		return nil, gdvmerrors.NewExitError(
			errors.Wrap(gdvmerrors.ErrPlatformUnsupported, "no engine builds for this OS/architecture"),
			gdvmerrors.ExitUser)
	}

	layout := store.NewLayout(cfg.ResolveDataDir(), cfg.ResolveCacheDir())
	client := github.NewClient(cfg.Release.Owner, cfg.Release.Repo, cfg.GitHubToken)
	locator := github.NewLocator(client)

	return &env{
		cfg:      cfg,
		layout:   layout,
		plat:     plat,
		client:   client,
		pipeline: installer.New(layout, plat, locator, client),
	}, nil
}

// parseVersion builds a version spec from a CLI argument using the
// configured release channel.
func (e *env) parseVersion(arg string) (version.Spec, error) {
	spec, err := version.Parse(arg, e.cfg.Release.Channel)
	if err != nil {
		return version.Spec{}, gdvmerrors.NewUserError(err, "Versions look like '3.5.1' or '4.2'")
	}
	return spec, nil
}

// pinnedVersion resolves the engine version pinned by the project in the
// working directory.
func (e *env) pinnedVersion() (version.Spec, error) {
	wd, err := os.Getwd()
	if err != nil {
		return version.Spec{}, errors.Wrap(err, "getting working directory")
	}

	pin, err := project.LoadPin(wd)
	if err != nil {
		if errors.Is(err, gdvmerrors.ErrNotPinned) {
			return version.Spec{}, gdvmerrors.NewUserError(err,
				fmt.Sprintf("Run 'gdvm pin <version>' to pin one, or create %s by hand", project.PinFileName))
		}
		return version.Spec{}, err
	}

	return e.parseVersion(pin.Engine.Version)
}

// exitify maps domain sentinels onto exit-coded errors with suggestions.
// Errors that already carry an exit code pass through untouched.
func exitify(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *gdvmerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case errors.Is(err, gdvmerrors.ErrVersionNotFound):
		return gdvmerrors.NewUserError(err, "Run 'gdvm list --available' to see published versions")
	case errors.Is(err, gdvmerrors.ErrNotInstalled):
		return gdvmerrors.NewUserError(err, "Run 'gdvm install <version>' first")
	case errors.Is(err, gdvmerrors.ErrNotPinned):
		return gdvmerrors.NewUserError(err, "Run 'gdvm pin <version>' in the project directory")
	case errors.Is(err, gdvmerrors.ErrPlatformUnsupported),
		errors.Is(err, gdvmerrors.ErrInvalidVersion):
		return gdvmerrors.NewExitError(err, gdvmerrors.ExitUser)
	default:
		return gdvmerrors.NewExitError(err, gdvmerrors.ExitSystem)
	}
}

// formatSize renders a byte count for human consumption.
func formatSize(n int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
	)
	switch {
	case n >= gib:
		return fmt.Sprintf("%.1f GiB", float64(n)/gib)
	case n >= mib:
		return fmt.Sprintf("%.1f MiB", float64(n)/mib)
	case n >= kib:
		return fmt.Sprintf("%.1f KiB", float64(n)/kib)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
