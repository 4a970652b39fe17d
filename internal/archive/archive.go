// Package archive unpacks release archives, reproducing the archive's
// internal directory structure and permission bits under the destination.
//
// Godot packages every platform as a zip, but the format is sniffed from
// magic bytes rather than assumed, with a tar.gz path for generality.
package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Extract unpacks the archive held in data into dest, creating dest and any
// parents. Entry paths are validated so an entry can never escape dest.
func Extract(data []byte, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return errors.Wrap(err, "creating destination directory")
	}

	switch {
	case isZip(data):
		return extractZip(data, dest)
	case isGzip(data):
		return extractTarGz(data, dest)
	default:
		return errors.New("unrecognized archive format")
	}
}

// ExtractFile unpacks the archive at path into dest. The whole file is read
// into memory first so the file and in-memory paths extract identically.
func ExtractFile(path, dest string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading archive")
	}
	return Extract(data, dest)
}

func isZip(data []byte) bool {
	return len(data) >= 4 && bytes.HasPrefix(data, []byte("PK\x03\x04"))
}

func isGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

func extractZip(data []byte, dest string) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errors.Wrap(err, "opening zip")
	}

	for _, file := range reader.File {
		target, err := entryPath(dest, file.Name)
		if err != nil {
			return err
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, dirMode(file.Mode())); err != nil {
				return errors.Wrapf(err, "creating dir %s", file.Name)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return errors.Wrapf(err, "preparing %s", file.Name)
		}
		rc, err := file.Open()
		if err != nil {
			return errors.Wrapf(err, "opening entry %s", file.Name)
		}
		if err := writeEntry(target, rc, file.Mode()); err != nil {
			rc.Close()
			return errors.Wrapf(err, "writing %s", file.Name)
		}
		rc.Close()
	}
	return nil
}

func extractTarGz(data []byte, dest string) error {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "opening gzip stream")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading tar header")
		}

		target, err := entryPath(dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, dirMode(os.FileMode(header.Mode))); err != nil {
				return errors.Wrapf(err, "creating dir %s", header.Name)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return errors.Wrapf(err, "preparing %s", header.Name)
			}
			if err := writeEntry(target, tr, os.FileMode(header.Mode)); err != nil {
				return errors.Wrapf(err, "writing %s", header.Name)
			}
		default:
			// Symlinks and special entries are not part of engine packages.
		}
	}
}

// entryPath joins an archive entry name onto dest, rejecting entries that
// would land outside it (zip-slip).
func entryPath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", errors.Newf("archive entry %q escapes destination", name)
	}
	return target, nil
}

func writeEntry(target string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// dirMode widens overly tight directory permissions so extracted trees stay
// traversable by their owner.
func dirMode(m os.FileMode) os.FileMode {
	perm := m.Perm() | 0o700
	if perm == 0o700 {
		perm = 0o755
	}
	return perm
}
