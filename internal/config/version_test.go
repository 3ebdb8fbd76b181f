package config

import (
	"strings"
	"testing"
)

func TestGetVersion_DefaultsToDev(t *testing.T) {
	if GetVersion() == "" {
		t.Error("expected non-empty version")
	}
}

func TestGetFullVersion_IncludesBuildInfo(t *testing.T) {
	full := GetFullVersion()
	if !strings.Contains(full, GetVersion()) {
		t.Errorf("expected full version to contain %q, got %q", GetVersion(), full)
	}
	if !strings.Contains(full, "build:") || !strings.Contains(full, "commit:") {
		t.Errorf("expected build and commit info, got %q", full)
	}
}
