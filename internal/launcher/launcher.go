// Package launcher starts installed engine binaries.
package launcher

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"

	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
	"github.com/thoreinstein/gdvm/internal/platform"
	"github.com/thoreinstein/gdvm/internal/store"
	"github.com/thoreinstein/gdvm/internal/version"
)

// Launch starts the engine's project manager and detaches from it. Stdio is
// left disconnected so the engine outlives the CLI process.
func Launch(layout store.Layout, plat platform.Platform, spec version.Spec) error {
	bin, err := binaryPath(layout, plat, spec)
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, "--project-manager")
	// Stdin/Stdout/Stderr stay nil so the child reads from and writes to
	// the null device rather than inheriting the terminal.

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "starting project manager")
	}
	if err := cmd.Process.Release(); err != nil {
		return errors.Wrap(err, "detaching project manager")
	}
	return nil
}

// Edit opens the editor for the project in dir and waits for it to exit.
// Stdio is inherited so editor output reaches the terminal.
func Edit(layout store.Layout, plat platform.Platform, spec version.Spec, dir string) error {
	bin, err := binaryPath(layout, plat, spec)
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, "-e")
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}
	return nil
}

// binaryPath returns the installed binary for spec, or ErrNotInstalled when
// the binary is not on disk.
func binaryPath(layout store.Layout, plat platform.Platform, spec version.Spec) (string, error) {
	path := layout.InstalledBinaryPath(spec, plat)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(gdvmerrors.ErrNotInstalled, "version %s", spec)
		}
		return "", errors.Wrapf(err, "checking binary for version %s", spec)
	}
	if !info.Mode().IsRegular() {
		return "", errors.Wrapf(gdvmerrors.ErrNotInstalled, "version %s", spec)
	}
	return path, nil
}
