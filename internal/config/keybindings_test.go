// ABOUTME: Tests for keybindings defaults, file overlay and key lookup

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestKeybindings_Defaults(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	tests := map[string]KeyAction{
		"up":     ActionScrollUp,
		"j":      ActionScrollDown,
		"pgdown": ActionPageDown,
		"G":      ActionEnd,
		"/":      ActionFilter,
		"esc":    ActionCancel,
		"?":      ActionHelp,
		"ctrl+c": ActionQuit,
	}
	for key, want := range tests {
		got, ok := kb.Lookup(key)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %q, %v; want %q", key, got, ok, want)
		}
	}
	if _, ok := kb.Lookup("f12"); ok {
		t.Error("Lookup(f12) should not match")
	}
}

func TestKeybindings_LoadOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keybindings.json")
	data := `{"scrollDown": ["ctrl+n"], "teleport": ["t"]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	kb, err := LoadKeybindings(path)
	if err != nil {
		t.Fatalf("LoadKeybindings failed: %v", err)
	}
	if got := kb.GetBindings(ActionScrollDown); len(got) != 1 || got[0] != "ctrl+n" {
		t.Errorf("scrollDown = %v, want [ctrl+n]", got)
	}
	if _, ok := kb.Lookup("j"); ok {
		t.Error("replaced binding j still resolves")
	}
	if _, ok := kb.Lookup("t"); ok {
		t.Error("unknown action was bound")
	}
	if len(kb.GetBindings(ActionQuit)) == 0 {
		t.Error("untouched action lost its defaults")
	}
}

func TestKeybindings_LoadErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadKeybindings("/nonexistent/keybindings.json"); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKeybindings(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadProjectKeybindings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	if err := EnsureDir(ProjectDir(project)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ProjectKeybindingsFile(project), []byte(`{"quit": ["x"]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	kb, err := LoadProjectKeybindings(project)
	if err != nil {
		t.Fatalf("LoadProjectKeybindings() error: %v", err)
	}
	if action, ok := kb.Lookup("x"); !ok || action != ActionQuit {
		t.Errorf("Lookup(x) = %q, %v; want quit", action, ok)
	}
}

func TestKeybindings_ExportTemplate(t *testing.T) {
	t.Parallel()

	out, err := NewKeybindings().ExportTemplate()
	if err != nil {
		t.Fatalf("ExportTemplate failed: %v", err)
	}
	var raw RawKeybindings
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		t.Fatalf("template is not JSON: %v", err)
	}
	if len(raw[string(ActionFilter)]) == 0 {
		t.Error("template is missing the filter action")
	}
}
