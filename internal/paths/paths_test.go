package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppDirs(t *testing.T) {
	tests := []struct {
		name string
		got  string
	}{
		{"config", AppConfigDir()},
		{"data", AppDataDir()},
		{"cache", AppCacheDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got == "" {
				t.Fatal("expected non-empty path")
			}
			if filepath.Base(tt.got) != AppName {
				t.Errorf("expected path ending in %q, got %q", AppName, tt.got)
			}
			if !filepath.IsAbs(tt.got) {
				t.Errorf("expected absolute path, got %q", tt.got)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Idempotent on existing directory.
	if err := EnsureDir(dir, 0); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestDataAndCacheAreDistinct(t *testing.T) {
	if AppDataDir() == AppCacheDir() {
		t.Errorf("data and cache roots should differ: %q", AppDataDir())
	}
}
