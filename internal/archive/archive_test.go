package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildZip creates a zip archive in memory with the given entries.
// Names ending in "/" become directories.
func buildZip(t *testing.T, entries map[string]string, mode os.FileMode) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		header := &zip.FileHeader{Name: name, Method: zip.Deflate}
		header.SetMode(mode)
		if strings.HasSuffix(name, "/") {
			header.SetMode(mode | os.ModeDir)
		}
		fw, err := w.CreateHeader(header)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtract_Zip(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Godot_v3.5.1-stable_x11.64": "elf bytes",
		"docs/README.txt":            "hello",
	}, 0o755)
	dest := filepath.Join(t.TempDir(), "out")

	if err := Extract(data, dest); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	bin, err := os.ReadFile(filepath.Join(dest, "Godot_v3.5.1-stable_x11.64"))
	if err != nil {
		t.Fatalf("reading extracted binary: %v", err)
	}
	if string(bin) != "elf bytes" {
		t.Errorf("binary content = %q", bin)
	}

	nested, err := os.ReadFile(filepath.Join(dest, "docs", "README.txt"))
	if err != nil {
		t.Fatalf("reading nested entry: %v", err)
	}
	if string(nested) != "hello" {
		t.Errorf("nested content = %q", nested)
	}
}

func TestExtract_PreservesExecutableBit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	data := buildZip(t, map[string]string{"engine": "bin"}, 0o755)
	dest := t.TempDir()

	if err := Extract(data, dest); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dest, "engine"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("executable bit lost: mode = %v", info.Mode())
	}
}

func TestExtract_RejectsZipSlip(t *testing.T) {
	data := buildZip(t, map[string]string{"../evil.txt": "escape"}, 0o644)
	dest := filepath.Join(t.TempDir(), "out")

	if err := Extract(data, dest); err == nil {
		t.Fatal("expected error for entry escaping destination")
	}

	if _, err := os.Stat(filepath.Join(filepath.Dir(dest), "evil.txt")); err == nil {
		t.Error("escaping entry was written outside the destination")
	}
}

func TestExtract_UnrecognizedFormat(t *testing.T) {
	if err := Extract([]byte("definitely not an archive"), t.TempDir()); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestExtract_TarGz(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	if err := tw.WriteHeader(&tar.Header{Name: "dir/", Typeflag: tar.TypeDir, Mode: 0o755}); err != nil {
		t.Fatal(err)
	}
	content := []byte("tar content")
	if err := tw.WriteHeader(&tar.Header{Name: "dir/file.txt", Typeflag: tar.TypeReg, Mode: 0o644, Size: int64(len(content))}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	dest := t.TempDir()
	if err := Extract(buf.Bytes(), dest); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "dir", "file.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "tar content" {
		t.Errorf("content = %q", got)
	}
}

func TestExtractFile_MatchesExtract(t *testing.T) {
	data := buildZip(t, map[string]string{"a.txt": "same bytes"}, 0o644)

	fromMem := t.TempDir()
	if err := Extract(data, fromMem); err != nil {
		t.Fatal(err)
	}

	archivePath := filepath.Join(t.TempDir(), "a.zip")
	if err := os.WriteFile(archivePath, data, 0o644); err != nil {
		t.Fatal(err)
	}
	fromFile := t.TempDir()
	if err := ExtractFile(archivePath, fromFile); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(filepath.Join(fromMem, "a.txt"))
	b, _ := os.ReadFile(filepath.Join(fromFile, "a.txt"))
	if !bytes.Equal(a, b) {
		t.Errorf("extractions differ: %q vs %q", a, b)
	}
}
