package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/gdvm/internal/installer"
	"github.com/thoreinstein/gdvm/internal/version"
)

func TestInstallCommand_Metadata(t *testing.T) {
	if installCmd.Use != "install [version]" {
		t.Errorf("Use = %q", installCmd.Use)
	}
	if installCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if installCmd.Flags().Lookup("force") == nil {
		t.Error("--force flag should be defined")
	}
}

func TestPrintInstallResult(t *testing.T) {
	spec, err := version.Parse("3.5.1", "")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		res  *installer.Result
		want string
	}{
		{
			name: "fresh install",
			res:  &installer.Result{InstalledPath: "/data/engines/3.5.1-stable"},
			want: "Installed Godot 3.5.1 to /data/engines/3.5.1-stable",
		},
		{
			name: "from cache",
			res:  &installer.Result{InstalledPath: "/data/engines/3.5.1-stable", FromCache: true},
			want: "from cache",
		},
		{
			name: "already installed",
			res:  &installer.Result{AlreadyInstalled: true},
			want: "Pass --force to re-install",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printInstallResult(&buf, spec, tt.res); err != nil {
				t.Fatalf("printInstallResult() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}
