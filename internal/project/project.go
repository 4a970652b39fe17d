// Package project reads and writes the per-project engine pin.
//
// A project pins its engine version in a gdvm.toml file at the project root:
//
//	[engine]
//	version = "3.5.1"
package project

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"

	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
	"github.com/thoreinstein/gdvm/pkg/fileutil"
)

// PinFileName is the pin file's name at the project root.
const PinFileName = "gdvm.toml"

// Pin is the on-disk shape of the pin file.
type Pin struct {
	Engine EnginePin `toml:"engine"`
}

// EnginePin holds the pinned engine settings.
type EnginePin struct {
	Version string `toml:"version"`
}

// LoadPin reads the pin file from dir. A missing file or a file without a
// version yields ErrNotPinned.
func LoadPin(dir string) (Pin, error) {
	path := filepath.Join(dir, PinFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Pin{}, errors.Wrapf(gdvmerrors.ErrNotPinned, "no %s in %s", PinFileName, dir)
		}
		return Pin{}, errors.Wrapf(err, "reading %s", path)
	}

	var pin Pin
	if err := toml.Unmarshal(data, &pin); err != nil {
		return Pin{}, errors.Wrapf(err, "parsing %s", path)
	}
	if pin.Engine.Version == "" {
		return Pin{}, errors.Wrapf(gdvmerrors.ErrNotPinned, "%s has no engine version", path)
	}
	return pin, nil
}

// WritePin writes the pin file to dir, replacing any existing pin.
func WritePin(dir, version string) error {
	pin := Pin{Engine: EnginePin{Version: version}}
	path := filepath.Join(dir, PinFileName)
	if err := fileutil.AtomicWriteTOML(path, pin); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
