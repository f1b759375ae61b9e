// ABOUTME: Tests for environment variable expansion in config
// ABOUTME: Validates ${VAR} replacement for set, unset, and mixed patterns

package config

import (
	"testing"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("VLIST_TEST_DIR", "/var/log")

	tests := []struct {
		in   string
		want string
	}{
		{"${VLIST_TEST_DIR}", "/var/log"},
		{"${VLIST_TEST_DIR}/vlist.log", "/var/log/vlist.log"},
		{"${DEFINITELY_NOT_SET_12345}", ""},
		{"plain string", "plain string"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandEnv(tt.in); got != tt.want {
			t.Errorf("expandEnv(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveEnvVars_SettingsFields(t *testing.T) {
	t.Setenv("VLIST_THEMES", "/themes")
	t.Setenv("VLIST_LOGS", "/logs")

	s := &Settings{
		Theme:   "${VLIST_THEMES}/night.json",
		LogFile: "${VLIST_LOGS}/vlist.log",
		Mode:    "${NOT_EXPANDED}",
	}

	ResolveEnvVars(s)

	if s.Theme != "/themes/night.json" {
		t.Errorf("Theme = %q; want %q", s.Theme, "/themes/night.json")
	}
	if s.LogFile != "/logs/vlist.log" {
		t.Errorf("LogFile = %q; want %q", s.LogFile, "/logs/vlist.log")
	}
	if s.Mode != "${NOT_EXPANDED}" {
		t.Errorf("Mode = %q; only path fields are expanded", s.Mode)
	}
}
