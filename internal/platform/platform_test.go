package platform

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		want   Platform
	}{
		{"windows", "386", Win32},
		{"windows", "amd64", Win64},
		{"windows", "arm64", Unsupported},
		{"darwin", "amd64", MacOS},
		{"darwin", "arm64", MacOS},
		{"linux", "386", Linux32},
		{"linux", "amd64", Linux64},
		{"linux", "arm64", Unsupported},
		{"freebsd", "amd64", Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			if got := resolve(tt.goos, tt.goarch); got != tt.want {
				t.Errorf("resolve(%s, %s) = %v, want %v", tt.goos, tt.goarch, got, tt.want)
			}
		})
	}
}

func TestSuffix_Total(t *testing.T) {
	// Every variant, including Unsupported and out-of-range values, must
	// yield a non-empty suffix so path construction never fails.
	variants := []Platform{Unsupported, Win32, Win64, MacOS, Linux32, Linux64, Platform(99)}

	seen := make(map[string]Platform)
	for _, p := range variants {
		s := p.Suffix()
		if s == "" {
			t.Errorf("Suffix() empty for %d", int(p))
		}
		if prev, dup := seen[s]; dup && prev != p && s != "unsupported" {
			t.Errorf("suffix %q shared by %v and %v", s, prev, p)
		}
		seen[s] = p
	}
}

func TestSuffix_Values(t *testing.T) {
	tests := []struct {
		p    Platform
		want string
	}{
		{Win32, "win32.exe"},
		{Win64, "win64.exe"},
		{MacOS, "osx.universal"},
		{Linux32, "x11.32"},
		{Linux64, "x11.64"},
		{Unsupported, "unsupported"},
	}

	for _, tt := range tests {
		if got := tt.p.Suffix(); got != tt.want {
			t.Errorf("Suffix(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestSupported(t *testing.T) {
	if Unsupported.Supported() {
		t.Error("Unsupported.Supported() should be false")
	}
	if !Linux64.Supported() {
		t.Error("Linux64.Supported() should be true")
	}
}
