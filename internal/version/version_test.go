package version

import (
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	if info.Version == "" {
		t.Error("expected non-empty version")
	}
	if info.GoVersion == "" {
		t.Error("expected non-empty Go version")
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("expected platform in os/arch form, got %s", info.Platform)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		Commit:    "abcdef1234567890",
		Date:      "2026-01-01",
		GoVersion: "go1.24.6",
		Platform:  "linux/amd64",
	}

	s := info.String()
	if !strings.Contains(s, "ClinBook 1.2.3") {
		t.Errorf("expected version in string, got %s", s)
	}
	if !strings.Contains(s, "abcdef12") || strings.Contains(s, "abcdef1234567890") {
		t.Errorf("expected shortened commit, got %s", s)
	}
}

func TestInfoShort(t *testing.T) {
	info := Info{Version: "2.0.0"}
	if info.Short() != "2.0.0" {
		t.Errorf("expected '2.0.0', got %s", info.Short())
	}
}
