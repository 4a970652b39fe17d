package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	// Reset viper state
	viper.Reset()

	Init()

	if got := viper.GetString("release.owner"); got != "godotengine" {
		t.Errorf("expected release.owner default godotengine, got %q", got)
	}
	if got := viper.GetString("release.repo"); got != "godot" {
		t.Errorf("expected release.repo default godot, got %q", got)
	}
	if got := viper.GetString("release.channel"); got != "stable" {
		t.Errorf("expected release.channel default stable, got %q", got)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}
	if cfg.Release.Owner != "godotengine" {
		t.Errorf("Release.Owner = %q, want default", cfg.Release.Owner)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("release:\n  owner: myfork\n  channel: beta\ngithub_token: tok123\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Release.Owner != "myfork" {
		t.Errorf("Release.Owner = %q, want myfork", cfg.Release.Owner)
	}
	if cfg.Release.Repo != "godot" {
		t.Errorf("Release.Repo = %q, want default godot", cfg.Release.Repo)
	}
	if cfg.Release.Channel != "beta" {
		t.Errorf("Release.Channel = %q, want beta", cfg.Release.Channel)
	}
	if cfg.GitHubToken != "tok123" {
		t.Errorf("GitHubToken = %q, want tok123", cfg.GitHubToken)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	_, err := Load("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestResolveDirs(t *testing.T) {
	cfg := &Config{DataDir: "/custom/data"}

	if got := cfg.ResolveDataDir(); got != "/custom/data" {
		t.Errorf("ResolveDataDir() = %q, want override", got)
	}
	if got := cfg.ResolveCacheDir(); got == "" {
		t.Error("ResolveCacheDir() should fall back to the XDG default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name: "valid defaults",
			cfg:  Default(),
		},
		{
			name:    "missing repo",
			cfg:     &Config{Release: ReleaseConfig{Owner: "godotengine", Channel: "stable"}},
			wantErr: ErrMissingReleaseSource,
		},
		{
			name: "channel with separator",
			cfg: &Config{Release: ReleaseConfig{
				Owner: "godotengine", Repo: "godot", Channel: "sta/ble",
			}},
			wantErr: ErrInvalidChannel,
		},
		{
			name: "malformed data dir",
			cfg: &Config{
				Release: ReleaseConfig{Owner: "godotengine", Repo: "godot", Channel: "stable"},
				DataDir: ".",
			},
			wantErr: ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			if tt.wantErr == nil {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			found := false
			for _, err := range errs {
				if errors.Is(err, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := Validate(nil); len(errs) == 0 {
		t.Error("Validate(nil) should report an error")
	}
}
